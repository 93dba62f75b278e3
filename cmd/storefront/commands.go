package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/storefront/internal/assets"
	"github.com/jask/storefront/internal/catalog"
	"github.com/jask/storefront/internal/install"
	"github.com/jask/storefront/internal/service"
	"github.com/jask/storefront/internal/tui"
)

const showWidth = 80

// newStorefront opens storage and builds the coordinator. The returned
// cleanup closes both. Storage that cannot be opened is not fatal.
func newStorefront() (*service.Storefront, func()) {
	st := openStorageOrDegrade(cfg.Storage, logger)
	sf := service.NewStorefront(
		catalog.MustDefault(),
		newOnboarding(st, cfg.Storage, logger),
		install.NewSimulator(logger),
		service.Options{GracePeriod: cfg.UI.GracePeriod, Logger: logger},
	)
	cleanup := func() {
		sf.Close()
		if err := st.close(); err != nil {
			logger.Warn("close storage", zap.Error(err))
		}
	}
	return sf, cleanup
}

func runInteractive(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sf, cleanup := newStorefront()
	defer cleanup()

	logger.Info("starting storefront",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("path", cfg.Storage.Path),
		zap.Int("apps", len(sf.Apps())))

	model := tui.New(ctx, sf, assets.NewRenderer(cfg.UI.Theme), cfg.UI, logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func listApps(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) == 1 {
		query = args[0]
	}
	apps := catalog.Filter(catalog.MustDefault().List(), query)
	if len(apps) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No apps match.")
		return nil
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tRATING\tAGE")
	for _, a := range apps {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%s\n", a.ID, a.Name, a.Category.Label(), a.Rating, a.AgeRating)
	}
	return w.Flush()
}

func listCategories(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, c := range catalog.SortByCount(catalog.MustDefault().CategoryCounts()) {
		fmt.Fprintf(w, "%s\t%d\t%s\n", c.Category.Label(), c.Count, c.Category.Hint())
	}
	return w.Flush()
}

func showApp(cmd *cobra.Command, args []string) error {
	app, ok := catalog.MustDefault().Find(args[0])
	if !ok {
		return fmt.Errorf("app %q not found", args[0])
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", app.Name, app.ID)
	fmt.Fprintf(out, "Developer: %s\n", app.Developer)
	fmt.Fprintf(out, "Category:  %s\n", app.Category.Label())
	fmt.Fprintf(out, "Rating:    %.1f  Age: %s\n", app.Rating, app.AgeRating)
	fmt.Fprintf(out, "\n%s\n", app.ShortDescription)
	if len(app.Screenshots) > 0 {
		fmt.Fprintln(out, "\nScreenshots:")
		for _, s := range app.Screenshots {
			fmt.Fprintf(out, "  - %s (%s)\n", s.Label, s.ID)
		}
	}

	text, err := assets.NewRenderer(assets.StylePlain).Render(app.DescriptionAsset, showWidth)
	if err != nil {
		logger.Warn("render description", zap.String("asset", app.DescriptionAsset), zap.Error(err))
		return nil
	}
	fmt.Fprintln(out, text)
	return nil
}

func showOnboarding(cmd *cobra.Command, args []string) error {
	st := openStorageOrDegrade(cfg.Storage, logger)
	defer st.close()

	ob := newOnboarding(st, cfg.Storage, logger)
	fmt.Fprintf(cmd.OutOrStdout(), "onboarding completed: %t\n", ob.Completed(cmd.Context()))
	return nil
}

func completeOnboarding(cmd *cobra.Command, args []string) error {
	st, err := openStorage(cfg.Storage)
	if err != nil {
		return err
	}
	defer st.close()

	ob := newOnboarding(st, cfg.Storage, logger)
	if err := ob.MarkCompleted(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "onboarding completed: true")
	return nil
}
