package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/storefront/internal/config"
	"github.com/jask/storefront/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Terminal app storefront showcase",
	Long: `storefront browses a built-in catalog of apps: search, categories,
detail pages with descriptions, screenshots and a simulated install.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			if err := os.Setenv("STOREFRONT_CONFIG", configPath); err != nil {
				return fmt.Errorf("set config path: %w", err)
			}
		}
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		logger, err = logging.New(cfg.Log)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

var appsCmd = &cobra.Command{
	Use:   "apps [query]",
	Short: "List catalog apps, optionally filtered",
	Args:  cobra.MaximumNArgs(1),
	RunE:  listApps,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories by number of apps",
	Args:  cobra.NoArgs,
	RunE:  listCategories,
}

var showCmd = &cobra.Command{
	Use:   "show <app-id>",
	Short: "Show an app with its rendered description",
	Args:  cobra.ExactArgs(1),
	RunE:  showApp,
}

var onboardingCmd = &cobra.Command{
	Use:   "onboarding",
	Short: "Print whether onboarding has been completed",
	Args:  cobra.NoArgs,
	RunE:  showOnboarding,
}

var onboardingCompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Mark onboarding as completed",
	Args:  cobra.NoArgs,
	RunE:  completeOnboarding,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ~/.config/storefront/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	onboardingCmd.AddCommand(onboardingCompleteCmd)

	rootCmd.AddCommand(appsCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(onboardingCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
