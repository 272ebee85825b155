package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/crosstab-cli/internal/config"
	"github.com/KaramelBytes/crosstab-cli/internal/logger"
	"github.com/KaramelBytes/crosstab-cli/internal/ui"
)

var (
	// Global flags
	cfgFile  string
	debug    bool
	flagLang string
	flagYear int

	// Loaded configuration
	cfg      *cfgpkg.Global
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "crosstab",
	Short: "Crosstab CLI: tabulate survey exports into an xlsx report",
	Long: `Crosstab reads a survey meta document and its answer export, filters the respondents,
and writes raw data, per-question aggregates and every pairwise cross tabulation to a workbook.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd.Root())
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

// Execute is the entry point called by main.main()
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		ui.Error(os.Stderr, "%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.crosstab/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "label language: ja or en (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagYear, "year", 0, "reference year for ages (overrides config)")
}

func loadConfig(root *cobra.Command) error {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return err
	}

	// Apply CLI overrides if provided
	f := root.PersistentFlags()
	if f.Changed("lang") {
		c.Lang = flagLang
	}
	if f.Changed("year") {
		c.CreatedYear = flagYear
	}
	if debug {
		c.Log.Level = "debug"
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	closer, err := logger.Setup(cfg.Log)
	if err != nil {
		return err
	}
	closeLog = closer
	return nil
}
