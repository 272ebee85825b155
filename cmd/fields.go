package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/crosstab-cli/internal/crosstab"
	"github.com/KaramelBytes/crosstab-cli/internal/distribution"
	"github.com/KaramelBytes/crosstab-cli/internal/schema"
	"github.com/KaramelBytes/crosstab-cli/internal/table"
	"github.com/KaramelBytes/crosstab-cli/internal/ui"
)

var fieldsMeta string

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the fields that take part in cross tabulation",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := schema.Load(fieldsMeta)
		if err != nil {
			return err
		}
		eng := distribution.New(s, cfg.Language(), cfg.CreatedYear)
		refs := crosstab.NewBuilder(eng, nil).Candidates()
		var names, titles, types, labels, variants []string
		for _, ref := range refs {
			d, err := eng.Describe(ref)
			if err != nil {
				return err
			}
			vs, err := eng.Variants(ref)
			if err != nil {
				return err
			}
			names = append(names, ref.String())
			titles = append(titles, d.Title)
			types = append(types, d.Type)
			labels = append(labels, d.Label)
			variants = append(variants, strconv.Itoa(len(vs)))
		}
		out := cmd.OutOrStdout()
		ui.Info(out, "%d candidate fields", len(refs))
		fmt.Fprintln(out, ui.RenderTable(table.New(
			table.NewColumn("name", true, names...),
			table.NewColumn("title", false, titles...),
			table.NewColumn("type", false, types...),
			table.NewColumn("label", false, labels...),
			table.NewColumn("options", false, variants...),
		)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
	fieldsCmd.Flags().StringVar(&fieldsMeta, "meta", "", "survey meta JSON")
	_ = fieldsCmd.MarkFlagRequired("meta")
}
