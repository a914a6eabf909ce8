package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"statscards/internal/cards"
	"statscards/internal/config"
	"statscards/internal/github"
)

var (
	// Global flags
	verbose    bool
	user       string
	token      string
	outputDir  string
	configPath string

	// Resolved per invocation
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "statscards",
	Short: "Generate SVG stat cards for a GitHub profile",
	Long: `statscards renders small decorative SVG cards (language donut,
activity bars, placeholders) for embedding in a profile README.

Language data comes from the GitHub REST API: all non-fork repositories
owned by the account are listed and their language byte counts summed.
Set GITHUB_TOKEN (or GH_TOKEN) to avoid the unauthenticated rate limit.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		// Flags beat environment and file.
		if user != "" {
			cfg.Username = user
		}
		if token != "" {
			cfg.Token = token
		}
		if outputDir != "" {
			cfg.OutputDir = outputDir
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// topLangsCmd generates the top-languages donut card
var topLangsCmd = &cobra.Command{
	Use:   "toplangs",
	Short: "Generate the top-languages donut card",
	Long: `Aggregates language bytes over every non-fork repository owned by
the configured account and renders a donut chart with a legend. The
largest languages are shown individually; the rest collapse into a
trailing "Other" slice.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		client := github.NewClient(cfg.GitHub, cfg.Token)
		_, err := cards.TopLanguages(cmd.Context(), client, cfg, logger)
		return err
	},
}

// activityCmd generates the monthly activity bar card
var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Generate the monthly activity bar card",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cards.MonthlyActivity(cfg, time.Now(), logger)
		return err
	},
}

// weeklyCmd generates the weekly placeholder card
var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Generate the weekly activity placeholder card",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cards.Weekly(cfg, logger)
		return err
	},
}

// wakatimeCmd generates the WakaTime placeholder card
var wakatimeCmd = &cobra.Command{
	Use:   "wakatime",
	Short: "Generate the WakaTime placeholder card",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cards.WakaTime(cfg, logger)
		return err
	},
}

// allCmd generates every card
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Generate every card",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		client := github.NewClient(cfg.GitHub, cfg.Token)
		if _, err := cards.TopLanguages(cmd.Context(), client, cfg, logger); err != nil {
			return err
		}
		if _, err := cards.MonthlyActivity(cfg, time.Now(), logger); err != nil {
			return err
		}
		if _, err := cards.Weekly(cfg, logger); err != nil {
			return err
		}
		_, err := cards.WakaTime(cfg, logger)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&user, "user", "", "GitHub account to aggregate (default: GITHUB_USERNAME)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "GitHub API token (default: GITHUB_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "out", "", "output directory for SVG cards (default: assets)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "statscards.yml", "path to the optional config file")

	rootCmd.AddCommand(topLangsCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(weeklyCmd)
	rootCmd.AddCommand(wakatimeCmd)
	rootCmd.AddCommand(allCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
