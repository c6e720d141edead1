package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"shiddaha/internal/bootstrap"
	"shiddaha/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shiddaha"
	}
	return filepath.Join(home, ".shiddaha")
}

func newRootCmd() *cobra.Command {
	var dataPath string

	root := &cobra.Command{
		Use:           "shiddaha",
		Short:         "Shiddaha focus tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", defaultDataPath(), "data directory")

	root.AddCommand(newTUICmd(&dataPath))
	root.AddCommand(newProfileCmd(&dataPath))
	root.AddCommand(newSessionCmd(&dataPath))
	root.AddCommand(newShopCmd(&dataPath))
	root.AddCommand(newStatsCmd(&dataPath))
	return root
}

func loadApp(dataPath string) (*bootstrap.App, error) {
	cfg, err := config.New(dataPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the shiddaha terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newProfileCmd(dataPath *string) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Profile lifecycle"}

	var characterID, name string
	create := &cobra.Command{
		Use:   "create --character <id> --name <name>",
		Short: "Create the profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ProfileCLI.Create(cmd.Context(), characterID, name)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "profile created: %s (%s)\n", out.CharacterName, out.CharacterImageID)
			return nil
		},
	}
	create.Flags().StringVar(&characterID, "character", "char_boy", "starting character: char_boy|char_girl")
	create.Flags().StringVar(&name, "name", "", "character name")

	profile.AddCommand(create)

	profile.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ProfileCLI.Get(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "name: %s\ncharacter: %s\ndates: %d\ntotal minutes: %d\ntent: %s\nowned tents: %s\nowned characters: %s\n",
				out.CharacterName, out.CharacterImageID, out.Currency, out.TotalMinutesStudied,
				out.SelectedTentID, strings.Join(out.OwnedTentIDs, ", "), strings.Join(out.OwnedCharacterIDs, ", "))
			return nil
		},
	})

	var yes bool
	reset := &cobra.Command{
		Use:   "reset --yes",
		Short: "Delete the profile and all session history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("pass --yes to confirm wiping all data")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if err := app.SessionCLI.ResetAll(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all data deleted")
			return nil
		},
	}
	reset.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	profile.AddCommand(reset)

	return profile
}

func newSessionCmd(dataPath *string) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Focus sessions"}

	var minutes int
	run := &cobra.Command{
		Use:   "run --minutes <n>",
		Short: "Run a focus session to completion (Ctrl-C cancels, no dates)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			return runSession(cmd, app, minutes)
		},
	}
	run.Flags().IntVar(&minutes, "minutes", 25, "session length in minutes")
	session.AddCommand(run)

	return session
}

// runSession drives the machine with a real one-second ticker. The machine
// only ever advances here, on the command's goroutine.
func runSession(cmd *cobra.Command, app *bootstrap.App, minutes int) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state, err := app.SessionCLI.Start(ctx, minutes)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "get ready! starting in %ds\n", state.CountdownRemaining)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if _, err := app.SessionCLI.Cancel(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "\nsession cancelled, no dates earned")
			return nil
		case <-ticker.C:
			out, err := app.SessionCLI.Tick(ctx)
			if err != nil {
				return err
			}
			if out.Completed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nsession complete! earned %d dates (balance %d)\n", out.DatesEarned, out.Currency)
				return nil
			}
			switch out.State.Phase {
			case "countdown":
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\rstarting in %ds ", out.State.CountdownRemaining)
			case "running":
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\rtime left %s ", formatSeconds(out.State.RemainingSeconds))
			}
		}
	}
}

func formatSeconds(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func newShopCmd(dataPath *string) *cobra.Command {
	shop := &cobra.Command{Use: "shop", Short: "The store"}

	var category string
	list := &cobra.Command{
		Use:   "list",
		Short: "List store items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			items, err := app.ShopCLI.List(cmd.Context(), category)
			if err != nil {
				return err
			}
			for _, item := range items {
				marker := " "
				switch {
				case item.Selected:
					marker = "*"
				case item.Owned:
					marker = "o"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %-12s %-10s %4d dates\n", marker, item.ID, item.Category, item.Price)
			}
			return nil
		},
	}
	list.Flags().StringVar(&category, "category", "", "tents|characters")
	shop.AddCommand(list)

	var itemID string
	buy := &cobra.Command{
		Use:   "buy --id <item>",
		Short: "Buy a store item",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(itemID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ShopCLI.Buy(cmd.Context(), itemID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "bought %s for %d dates (balance %d)\n", out.Item.ID, out.Item.Price, out.Currency)
			return nil
		},
	}
	buy.Flags().StringVar(&itemID, "id", "", "item id")
	shop.AddCommand(buy)

	var selectID string
	sel := &cobra.Command{
		Use:   "select --id <item>",
		Short: "Equip an owned tent or character",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(selectID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			item, err := app.ShopCLI.Select(cmd.Context(), selectID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "equipped %s\n", item.ID)
			return nil
		},
	}
	sel.Flags().StringVar(&selectID, "id", "", "item id")
	shop.AddCommand(sel)

	return shop
}

func newStatsCmd(dataPath *string) *cobra.Command {
	stats := &cobra.Command{Use: "stats", Short: "Progress stats"}

	stats.AddCommand(&cobra.Command{
		Use:   "week",
		Short: "Weekly focus progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Weekly(cmd.Context())
			if err != nil {
				return err
			}
			days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
			for idx, minutes := range out.DailyMinutes {
				marker := " "
				if idx == out.Today {
					marker = ">"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %3dm %s\n", marker, days[idx], minutes, strings.Repeat("#", minutes/15))
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "total this week: %dm\n", out.TotalMinutes)
			return nil
		},
	})

	return stats
}
