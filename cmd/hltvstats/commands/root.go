package commands

import (
	"context"
	"fmt"
	"hltvstats/internal/app"
	"hltvstats/internal/reference"
	"hltvstats/lib/scrapers/hltv"
	"hltvstats/lib/serviceutil"
	"hltvstats/lib/telemetry"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
)

type env struct {
	config    Config
	app       app.App
	telemetry telemetry.Telemetry
}

var current env

var rootCmd = &cobra.Command{
	Use:   "hltvstats",
	Short: "hltvstats computes head-to-head and per-map win rates from HLTV match histories.",
	Long: `hltvstats fetches a team's match history from HLTV and reports its win/loss
record against an opponent, on a map, and against the opponent on the map.

Run without a subcommand to pick the team, opponent and map from a menu.`,
	Args:               cobra.NoArgs,
	PersistentPreRunE:  setup,
	PersistentPostRunE: shutdown,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return current.app.Interactive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := readConfig()
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	telemetry.InitSlog(cfg.Verbose)

	tel, err := telemetry.Setup(cmd.Context(), "hltvstats", cfg.Telemetry)
	if err != nil {
		slog.Warn("failed to set up telemetry", "err", err)
	}

	teams, err := reference.LoadTeams(cfg.TeamsFile)
	if err != nil {
		return fmt.Errorf("load teams: %w", err)
	}
	maps, err := reference.LoadMaps(cfg.MapsFile)
	if err != nil {
		return fmt.Errorf("load maps: %w", err)
	}
	slog.Debug("loaded reference lists", "teams", len(teams), "maps", len(maps))

	if len(teams) < 2 {
		return fmt.Errorf("%s: need at least 2 teams, found %d", cfg.TeamsFile, len(teams))
	}

	current = env{
		config:    cfg,
		telemetry: tel,
		app:       app.New(hltv.NewClient(cfg.clientOptions()), teams, maps),
	}
	return nil
}

func flushTelemetry() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return current.telemetry.Shutdown(ctx)
}

func shutdown(cmd *cobra.Command, args []string) error {
	return flushTelemetry()
}

func run(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		// cobra skips PersistentPostRunE when the command fails
		if flushErr := flushTelemetry(); flushErr != nil {
			slog.Warn("failed to flush telemetry", "err", flushErr)
		}
	}
	return err
}

func ExecuteContext(ctx context.Context) {
	if err := run(ctx, os.Args[1:]); err != nil {
		serviceutil.Fatal("hltvstats failed", err)
	}
}
