package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/crosstab-cli/internal/report"
	"github.com/KaramelBytes/crosstab-cli/internal/ui"
	"github.com/KaramelBytes/crosstab-cli/internal/writer"
)

var (
	repMeta    string
	repInput   string
	repOutput  string
	repFormat  string
	repWorkers int
	repIgnore  []string
	repInclude []string
	repNoText  bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the crosstab report from a meta document and an export",
	Example: `  crosstab report --meta meta.json --input answers.csv --output report.xlsx
  crosstab report --meta meta.json --input answers.xlsx --output report.md --include region=関西`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := writer.ParseFormat(repFormat, repOutput)
		if err != nil {
			return err
		}
		opts, err := datasetOptions(repIgnore, repInclude, repWorkers, cmd.Flags().Changed("workers"))
		if err != nil {
			return err
		}
		if repNoText {
			opts.IncludeText = false
		}
		ds, err := report.Load(repMeta, repInput, opts)
		if err != nil {
			return err
		}
		rep, err := ds.Build(cmd.Context())
		if err != nil {
			return err
		}
		if err := writer.Write(rep, format, repOutput); err != nil {
			return err
		}
		ui.Success(cmd.OutOrStdout(), "Wrote %s (%d records, %d crosstabs)", repOutput, ds.Len(), len(rep.CrosstabN))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&repMeta, "meta", "", "survey meta JSON")
	reportCmd.Flags().StringVar(&repInput, "input", "", "answer export (.csv or .xlsx)")
	reportCmd.Flags().StringVarP(&repOutput, "output", "o", "", "output file")
	reportCmd.Flags().StringVar(&repFormat, "format", "", "output format: xlsx or md (default from --output extension)")
	reportCmd.Flags().IntVar(&repWorkers, "workers", 0, "parallel crosstab workers (0 = all CPUs)")
	reportCmd.Flags().StringSliceVar(&repIgnore, "ignore", nil, "drop respondents matching category=value (repeatable)")
	reportCmd.Flags().StringSliceVar(&repInclude, "include", nil, "keep only respondents matching category=value (repeatable)")
	reportCmd.Flags().BoolVar(&repNoText, "no-text", false, "omit text and textarea answers from the raw sheets")
	_ = reportCmd.MarkFlagRequired("meta")
	_ = reportCmd.MarkFlagRequired("input")
	_ = reportCmd.MarkFlagRequired("output")
}
