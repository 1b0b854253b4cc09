package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scriptdocs/internal/convert"
	"scriptdocs/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of the external document converters",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.Check(convert.Requirements(cfg.Converter.Preferred, cfg.Converter.Fallback))
			selected, haveConverter := deps.FirstAvailable(statuses)

			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				state := "missing"
				if status.Available {
					state = "ok"
				}
				if haveConverter && status.Available && status.Name == selected.Name {
					state = "ok (selected)"
				}
				detail := status.Detail
				if detail == "" {
					detail = status.Command
				}
				rows = append(rows, []string{status.Name, status.Description, state, detail})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Converter", "Description", "Status", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			if !haveConverter {
				return fmt.Errorf("no document converter available: install %q or %q",
					cfg.Converter.Preferred, cfg.Converter.Fallback)
			}
			return nil
		},
	}
}
