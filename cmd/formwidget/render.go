package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRenderCmd(app *cli) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the page HTML",
		Long:  `Render the page shell with every form mounted and write it to stdout or --output.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := app.buildPage(cmd.Context())
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return p.Render(cmd.OutOrStdout())
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			if err := p.Render(f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the page to this file instead of stdout")
	return cmd
}
