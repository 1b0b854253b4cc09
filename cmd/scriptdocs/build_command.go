package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"scriptdocs/internal/convert"
	"scriptdocs/internal/episode"
	"scriptdocs/internal/logging"
	"scriptdocs/internal/site"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Convert the script archives into the documentation site",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, closer, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer.Close()
			}

			conv, err := convert.New(cfg.Converter.Preferred, cfg.Converter.Fallback, cfg.Converter.TimeoutSeconds)
			if err != nil {
				return err
			}

			builder := site.NewBuilder(cfg, conv, logger)
			builder.SetDryRun(dryRun)
			result, err := builder.Run(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderBuildSummary(result, dryRun))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be written without touching disk")
	return cmd
}

func renderBuildSummary(result *site.Result, dryRun bool) string {
	pagesLabel := "Pages written"
	if dryRun {
		pagesLabel = "Pages (dry run)"
	}
	rows := [][]string{
		{"Episodes", strconv.Itoa(result.Episodes)},
		{pagesLabel, strconv.Itoa(result.PagesWritten)},
		{"Missing English", coverageCell(result.MissingEnglish)},
		{"Missing 中文", coverageCell(result.MissingChinese)},
		{"Elapsed", result.Duration.Round(timePrecision).String()},
	}
	return renderTable([]string{"Build", result.BuildID}, rows, []columnAlignment{alignLeft, alignLeft})
}

func coverageCell(ids []episode.ID) string {
	if len(ids) == 0 {
		return "none"
	}
	tags := make([]string, 0, len(ids))
	for _, id := range episode.Sorted(ids) {
		tags = append(tags, id.Tag())
	}
	return strings.Join(tags, ", ")
}
