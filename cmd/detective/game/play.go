package game

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/myrjola/detectivequest/internal/config"
	"github.com/myrjola/detectivequest/internal/console"
	"github.com/myrjola/detectivequest/internal/content"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/investigation"
	"github.com/myrjola/detectivequest/internal/logging"
	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/myrjola/detectivequest/internal/pprofserver"
	"github.com/myrjola/detectivequest/internal/random"
	"github.com/myrjola/detectivequest/internal/suspects"
	"github.com/spf13/cobra"
)

var Play = &cobra.Command{
	Use:     "play",
	GroupID: "game",
	Short:   "Investigate the mansion",
	Long: `Explore the mansion room by room, collect the clues you find and accuse a suspect.
Two clues pointing at the accused close the case.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	caseID, err := random.CaseID()
	if err != nil {
		return errors.Wrap(err, "generate case id")
	}
	ctx = logging.WithAttrs(ctx, slog.String("case_id", caseID))

	pprofserver.Launch(ctx, cfg.PprofPort, logger)

	if _, err = Session(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cfg, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "session failed", errors.SlogError(err))
		return err
	}
	return nil
}

// Session plays one game with answers read from in and output written to out. Every session
// builds its own mansion, suspect table and clue index.
func Session(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	cfg config.Config,
	logger *slog.Logger,
) (investigation.Verdict, error) {
	root, err := mansion.Build(content.Mansion())
	if err != nil {
		return investigation.Verdict{}, errors.Wrap(err, "build mansion")
	}

	table, err := suspects.New(cfg.SuspectBuckets, logger)
	if err != nil {
		return investigation.Verdict{}, errors.Wrap(err, "create suspect table")
	}
	table.Load(ctx, content.Associations())
	logger.LogAttrs(ctx, slog.LevelDebug, "suspect table ready",
		slog.Int("entries", table.Len()), slog.Int("buckets", table.BucketCount()))

	c := console.New(in, out, table.Suspects(), cfg.NoColor, logger)
	c.Welcome(content.Title, content.Intro)

	verdict, err := investigation.New(root, table, c, c, logger).Run(ctx)
	if err != nil {
		return investigation.Verdict{}, errors.Wrap(err, "run investigation")
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "session finished",
		slog.String("outcome", verdict.Outcome.String()),
		slog.Int("evidence", verdict.Count()))
	return verdict, nil
}
