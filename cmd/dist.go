package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/crosstab-cli/internal/crosstab"
	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
	"github.com/KaramelBytes/crosstab-cli/internal/field"
	"github.com/KaramelBytes/crosstab-cli/internal/report"
	"github.com/KaramelBytes/crosstab-cli/internal/table"
	"github.com/KaramelBytes/crosstab-cli/internal/ui"
)

var (
	distMeta    string
	distInput   string
	distBy      string
	distPerc    bool
	distIgnore  []string
	distInclude []string
)

var distCmd = &cobra.Command{
	Use:   "dist <field>",
	Short: "Preview the distribution of one field, optionally crossed with another",
	Example: `  crosstab dist gender --meta meta.json --input answers.csv
  crosstab dist region --by field5 --perc --meta meta.json --input answers.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := field.Parse(args[0])
		if err != nil {
			return err
		}
		opts, err := datasetOptions(distIgnore, distInclude, 1, true)
		if err != nil {
			return err
		}
		ds, err := report.Load(distMeta, distInput, opts)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		ui.Info(out, "%d records after filtering", ds.Len())

		if distBy != "" {
			by, err := field.Parse(distBy)
			if err != nil {
				return err
			}
			mode := crosstab.ModeN
			if distPerc {
				mode = crosstab.ModePerc
			}
			t, err := ds.Builder().PairTable(ref, by, mode)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.RenderWithMeta(t))
			return nil
		}

		printed := false
		if ref.IsStatic() && (ref.Static == field.Age || ref.Static == field.Children) {
			sum, err := ds.Engine.NumericSummary(ref, ds.Records)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.RenderTable(table.New(
				table.NewColumn("count", true, strconv.Itoa(sum.Count)),
				table.NewColumn("mean", true, fmt.Sprintf("%.2f", sum.Mean)),
				table.NewColumn("median", true, fmt.Sprintf("%.2f", sum.Median)),
				table.NewColumn("stddev", true, fmt.Sprintf("%.2f", sum.StdDev)),
				table.NewColumn("min", true, fmt.Sprintf("%.0f", sum.Min)),
				table.NewColumn("max", true, fmt.Sprintf("%.0f", sum.Max)),
			)))
			printed = true
		}
		res, err := ds.Engine.SelfDistribution(ref, ds.Records)
		if err != nil {
			if printed && errors.Is(err, apperrors.ErrUnsupportedField) {
				return nil
			}
			return err
		}
		d, err := ds.Engine.Describe(ref)
		if err != nil {
			return err
		}
		counts := make([]string, len(res.Freq))
		perc := make([]string, len(res.Freq))
		for i, n := range res.Freq {
			counts[i] = strconv.Itoa(n)
			perc[i] = fmt.Sprintf("%.2f%%", res.Perc[i])
		}
		fmt.Fprintln(out, ui.RenderWithMeta(table.WithMeta{
			Meta: d.Strings(),
			Table: table.New(
				table.NewColumn("選択肢", false, res.Variants...).WithFooter("null"),
				table.NewColumn("件数", true, counts...).WithFooter(strconv.Itoa(res.Nulls)),
				table.NewColumn("割合", true, perc...).WithFooter(fmt.Sprintf("n=%d", res.Total)),
			),
		}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(distCmd)
	distCmd.Flags().StringVar(&distMeta, "meta", "", "survey meta JSON")
	distCmd.Flags().StringVar(&distInput, "input", "", "answer export (.csv or .xlsx)")
	distCmd.Flags().StringVar(&distBy, "by", "", "secondary field for a cross tabulation")
	distCmd.Flags().BoolVar(&distPerc, "perc", false, "show the cross tabulation as percentages")
	distCmd.Flags().StringSliceVar(&distIgnore, "ignore", nil, "drop respondents matching category=value (repeatable)")
	distCmd.Flags().StringSliceVar(&distInclude, "include", nil, "keep only respondents matching category=value (repeatable)")
	_ = distCmd.MarkFlagRequired("meta")
	_ = distCmd.MarkFlagRequired("input")
}
