package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formwidget/pkg/renderers/tui"
	"github.com/goliatone/go-formwidget/pkg/widget"
)

// errRejected makes the process exit 1 once the errors have been printed.
var errRejected = errors.New("form rejected")

type checkReport struct {
	Form     string              `json:"form"`
	Accepted bool                `json:"accepted"`
	Errors   []widget.FieldError `json:"errors,omitempty"`
}

func newCheckCmd(app *cli) *cobra.Command {
	var (
		formName string
		sets     []string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate values given on the command line",
		Long: `Fill a form with --set label=value pairs and submit it. Accepted values are
printed in --format; rejected submissions print the field errors as JSON and
exit with status 1.`,
		Example: `  formwidget check --form fr --set nom=Dupont --set prenom=Jean --set email=jean@example.com`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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
			m, err := app.mount(p, formName)
			if err != nil {
				return err
			}

			form := m.Form()
			for _, set := range sets {
				label, value, ok := strings.Cut(set, "=")
				if !ok {
					return fmt.Errorf("invalid --set %q, want label=value", set)
				}
				field, ok := form.Field(strings.TrimSpace(label))
				if !ok {
					return fmt.Errorf("form %s has no field %q", m.Name(), label)
				}
				field.SetValue(value)
			}

			result := form.Submit()
			if !result.Accepted {
				app.logger.Debug("check rejected", zap.String("form", m.Name()), zap.Int("errors", len(result.Errors)))
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(checkReport{Form: m.Name(), Errors: result.Errors}); err != nil {
					return err
				}
				return errRejected
			}

			out, err := tui.Encode(result.Values, outputFormat)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(out, '\n'))
			return err
		},
	}
	cmd.Flags().StringVar(&formName, "form", "", "form to check (default: first form)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field value as label=value; repeatable")
	cmd.Flags().StringVar(&format, "format", "", "output format for accepted values: json, form or pretty")
	return cmd
}
