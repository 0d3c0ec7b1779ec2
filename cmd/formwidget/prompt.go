package main

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formwidget/pkg/page"
	"github.com/goliatone/go-formwidget/pkg/renderers/tui"
)

func newPromptCmd(app *cli) *cobra.Command {
	var (
		formName string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill a form in from the terminal",
		Long: `Prompt for every field of a form, validate the answers with the form's rules
and print the accepted values. Rejected answers can be corrected and resubmitted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return errors.New("prompt needs an interactive terminal; use check instead")
			}
			if format == "" {
				format = app.cfg.App.OutputFormat
			}
			outputFormat, err := tui.ParseOutputFormat(format)
			if err != nil {
				return err
			}

			p, err := app.buildPage(cmd.Context())
			if err != nil {
				return err
			}

			session := tui.New(
				tui.WithOutputFormat(outputFormat),
				tui.WithLogger(app.logger),
				tui.WithPromptDriver(tui.NewSurveyDriver(cmd.ErrOrStderr())),
			)

			var m *page.Mount
			if formName != "" {
				m, err = app.mount(p, formName)
			} else {
				var candidates []*page.Mount
				if candidates, err = app.mounts(p); err == nil {
					m, err = session.Choose(cmd.Context(), candidates)
				}
			}
			if err != nil {
				return err
			}

			values, err := session.Run(cmd.Context(), m)
			if err != nil {
				return err
			}
			out, err := session.Encode(values)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(out, '\n'))
			return err
		},
	}
	cmd.Flags().StringVar(&formName, "form", "", "form to fill in (default: ask)")
	cmd.Flags().StringVar(&format, "format", "", "output format: json, form or pretty")
	return cmd
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
