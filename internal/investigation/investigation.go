// Package investigation runs one game session: exploring the mansion, reviewing the collected
// clues and accusing a suspect.
package investigation

import (
	"context"
	"io"
	"iter"
	"log/slog"
	"slices"

	"github.com/myrjola/detectivequest/internal/clueindex"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/myrjola/detectivequest/internal/suspects"
)

// EvidenceThreshold is how many clues must point at the accused to close the case.
const EvidenceThreshold = 2

var (
	ErrInvalidInput = errors.NewSentinel("invalid input")
	ErrClosed       = errors.NewSentinel("investigation already closed")
)

// Phase of an investigation.
type Phase int

const (
	Exploring Phase = iota
	Reviewing
	Accusing
	Closed
)

func (p Phase) String() string {
	switch p {
	case Exploring:
		return "exploring"
	case Reviewing:
		return "reviewing"
	case Accusing:
		return "accusing"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Outcome of the investigation.
type Outcome int

const (
	NoClues Outcome = iota
	Inconclusive
	CaseClosed
)

func (o Outcome) String() string {
	switch o {
	case NoClues:
		return "no-clues"
	case Inconclusive:
		return "inconclusive"
	case CaseClosed:
		return "case-closed"
	default:
		return "unknown"
	}
}

// Verdict is the result of an accusation.
type Verdict struct {
	Accused string
	// Evidence holds the collected clues pointing at Accused, in ascending order.
	Evidence []string
	Outcome  Outcome
}

// Count is the amount of evidence against the accused.
func (v Verdict) Count() int {
	return len(v.Evidence)
}

// Investigation owns the state of one session. It must not be shared between sessions.
type Investigation struct {
	current  *mansion.Room
	clues    *clueindex.Index
	suspects *suspects.Table
	phase    Phase
	evidence int

	input  Input
	out    Presenter
	logger *slog.Logger
}

// New starts an investigation at the entrance of the mansion. The investigation takes
// ownership of root; clues collected from its rooms are removed from them.
func New(root *mansion.Room, table *suspects.Table, input Input, out Presenter, logger *slog.Logger) *Investigation {
	return &Investigation{
		current:  root,
		clues:    clueindex.New(),
		suspects: table,
		phase:    Exploring,
		input:    input,
		out:      out,
		logger:   logger.With("source", "Investigation"),
	}
}

// Phase returns the current phase.
func (inv *Investigation) Phase() Phase {
	return inv.phase
}

// Current returns the room the player is in.
func (inv *Investigation) Current() *mansion.Room {
	return inv.current
}

// Clues yields the collected clues in ascending order.
func (inv *Investigation) Clues() iter.Seq[string] {
	return inv.clues.All()
}

// Run plays the session to the end and returns the verdict. Input errors other than
// ErrInvalidInput and end of input, as well as context cancellation, end the run early.
func (inv *Investigation) Run(ctx context.Context) (Verdict, error) {
	if inv.phase == Closed {
		return Verdict{}, ErrClosed
	}

	if inv.phase == Exploring {
		if err := inv.explore(ctx); err != nil {
			return Verdict{}, errors.Wrap(err, "explore")
		}
	}

	if inv.clues.Len() == 0 {
		inv.phase = Closed
		inv.out.Present(ctx, Event{Kind: NoCluesCollected})
		inv.logger.LogAttrs(ctx, slog.LevelInfo, "investigation closed without clues")
		return Verdict{Outcome: NoClues}, nil
	}

	inv.review(ctx)

	if err := ctx.Err(); err != nil {
		return Verdict{}, errors.Wrap(err, "accuse")
	}
	accused, err := inv.input.PromptAccusation(ctx)
	if err != nil {
		return Verdict{}, errors.Wrap(err, "prompt accusation")
	}

	verdict := inv.accuse(ctx, accused)
	inv.out.Present(ctx, Event{Kind: VerdictReached, Verdict: verdict})
	return verdict, nil
}

func (inv *Investigation) explore(ctx context.Context) error {
	inv.enter(ctx)
	for inv.phase == Exploring {
		if inv.current.IsLeaf() {
			inv.out.Present(ctx, Event{Kind: DeadEnd, Room: inv.current.Name()})
			inv.phase = Reviewing
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}
		action, err := inv.input.PromptDirection(ctx, inv.options())
		switch {
		case errors.Is(err, ErrInvalidInput):
			inv.logger.LogAttrs(ctx, slog.LevelDebug, "invalid direction", errors.SlogError(err))
			inv.out.Present(ctx, Event{Kind: InputRejected, Room: inv.current.Name(), Err: err})
			continue
		case errors.Is(err, io.EOF):
			inv.logger.LogAttrs(ctx, slog.LevelInfo, "input ended while exploring")
			action = Exit
		case err != nil:
			return errors.Wrap(err, "prompt direction", slog.String("room", inv.current.Name()))
		}

		if action == Exit {
			inv.out.Present(ctx, Event{Kind: LeftMansion, Room: inv.current.Name()})
			inv.phase = Reviewing
			return nil
		}
		inv.follow(ctx, action)
	}
	return nil
}

// follow moves through the door chosen by action, or reports that there is none.
func (inv *Investigation) follow(ctx context.Context, action Action) {
	var direction mansion.Direction
	switch action {
	case GoLeft:
		direction = mansion.Left
	case GoRight:
		direction = mansion.Right
	default:
		err := errors.Wrap(ErrInvalidInput, "unknown action", slog.Int("action", int(action)))
		inv.out.Present(ctx, Event{Kind: InputRejected, Room: inv.current.Name(), Err: err})
		return
	}
	next, err := mansion.Move(inv.current, direction)
	if err != nil {
		inv.logger.LogAttrs(ctx, slog.LevelDebug, "path rejected", errors.SlogError(err))
		inv.out.Present(ctx, Event{Kind: PathRejected, Room: inv.current.Name(), Direction: direction})
		return
	}
	inv.current = next
	inv.enter(ctx)
}

// enter announces the current room and collects its clue, if any.
func (inv *Investigation) enter(ctx context.Context) {
	room := inv.current
	inv.logger.LogAttrs(ctx, slog.LevelDebug, "entered room", slog.String("room", room.Name()))
	inv.out.Present(ctx, Event{Kind: RoomEntered, Room: room.Name()})

	clue, ok := room.TakeClue()
	if !ok {
		return
	}
	if !inv.clues.Insert(clue) {
		inv.logger.LogAttrs(ctx, slog.LevelDebug, "clue already collected", slog.String("clue", clue))
		return
	}
	inv.out.Present(ctx, Event{Kind: ClueFound, Room: room.Name(), Clue: clue})
}

func (inv *Investigation) options() []Option {
	var options []Option
	for _, d := range []mansion.Direction{mansion.Left, mansion.Right} {
		if child := inv.current.Child(d); child != nil {
			options = append(options, Option{Direction: d, Room: child.Name()})
		}
	}
	return options
}

func (inv *Investigation) review(ctx context.Context) {
	inv.phase = Reviewing
	clues := slices.Collect(inv.clues.All())
	inv.logger.LogAttrs(ctx, slog.LevelDebug, "reviewing clues",
		slog.Int("clues", len(clues)), slog.Int("indexHeight", inv.clues.Height()))
	inv.out.Present(ctx, Event{Kind: CluesReviewed, Clues: clues})
	inv.phase = Accusing
}

// accuse tallies the collected clues that point at accused and closes the investigation.
// Clues without a known suspect count for nobody.
func (inv *Investigation) accuse(ctx context.Context, accused string) Verdict {
	inv.evidence = 0
	var evidence []string
	for clue := range inv.clues.All() {
		suspect, err := inv.suspects.Lookup(clue)
		if err != nil {
			inv.logger.LogAttrs(ctx, slog.LevelDebug, "clue points at nobody", errors.SlogError(err))
			continue
		}
		if suspect == accused {
			inv.evidence++
			evidence = append(evidence, clue)
		}
	}

	outcome := Inconclusive
	if inv.evidence >= EvidenceThreshold {
		outcome = CaseClosed
	}
	inv.phase = Closed
	inv.logger.LogAttrs(ctx, slog.LevelInfo, "verdict reached",
		slog.String("accused", accused),
		slog.Int("evidence", inv.evidence),
		slog.String("outcome", outcome.String()))

	return Verdict{
		Accused:  accused,
		Evidence: evidence,
		Outcome:  outcome,
	}
}
