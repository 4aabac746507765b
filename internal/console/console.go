// Package console plays the investigation in a terminal: it reads the player's answers line by
// line and prints what happens.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/investigation"
	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/schollz/closestmatch"
)

type styles struct {
	title   lipgloss.Style
	room    lipgloss.Style
	clue    lipgloss.Style
	warning lipgloss.Style
	muted   lipgloss.Style
	guilty  lipgloss.Style
	open    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().Bold(true).
			Foreground(lipgloss.Color("214")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1), //nolint:mnd // horizontal padding
		room:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		clue:    r.NewStyle().Italic(true).Foreground(lipgloss.Color("222")),
		warning: r.NewStyle().Foreground(lipgloss.Color("203")),
		muted:   r.NewStyle().Faint(true),
		guilty:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		open:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
	}
}

// maxLineLength caps an answer. Longer lines are discarded and rejected as invalid input.
const maxLineLength = 4096

type lineResult struct {
	line string
	err  error
}

// Console implements [investigation.Input] and [investigation.Presenter] on a pair of streams.
type Console struct {
	reader   *bufio.Reader
	out      io.Writer
	styles   styles
	suspects []string
	matcher  *closestmatch.ClosestMatch
	logger   *slog.Logger

	// pending receives the line being read in the background. It survives a cancelled
	// prompt so that no typed answer is lost.
	pending chan lineResult
}

// New creates a Console reading answers from in and writing to out. knownSuspects are listed
// when asking for an accusation and used to suggest a name when the accused is unknown.
func New(in io.Reader, out io.Writer, knownSuspects []string, noColor bool, logger *slog.Logger) *Console {
	renderer := lipgloss.NewRenderer(out)
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
	c := &Console{
		reader:   bufio.NewReader(in),
		out:      out,
		styles:   newStyles(renderer),
		suspects: slices.Clone(knownSuspects),
		logger:   logger.With("source", "Console"),
	}
	if len(knownSuspects) > 0 {
		c.matcher = closestmatch.New(c.suspects, []int{2, 3}) //nolint:mnd // bag sizes for short names
	}
	return c
}

// Welcome prints the title and introduction of the case.
func (c *Console) Welcome(title, intro string) {
	c.println(c.styles.title.Render(title))
	c.println(intro)
}

// ParseAction turns a typed answer into an action. Portuguese and English words and their
// initials are accepted in any case.
func ParseAction(token string) (investigation.Action, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "e", "esquerda", "l", "left":
		return investigation.GoLeft, nil
	case "d", "direita", "r", "right":
		return investigation.GoRight, nil
	case "s", "sair", "q", "quit", "exit":
		return investigation.Exit, nil
	default:
		return investigation.Exit, errors.Wrap(investigation.ErrInvalidInput, "parse direction",
			slog.String("token", token))
	}
}

// PromptDirection lists the doors of the current room and reads the choice.
func (c *Console) PromptDirection(ctx context.Context, options []investigation.Option) (investigation.Action, error) {
	c.println("Para onde voce gostaria de ir?")
	for _, o := range options {
		switch o.Direction {
		case mansion.Left:
			c.println(fmt.Sprintf("  [e] Esquerda (para %s)", o.Room))
		case mansion.Right:
			c.println(fmt.Sprintf("  [d] Direita (para %s)", o.Room))
		}
	}
	c.println("  [s] Sair da mansao")
	c.print("Sua escolha (e/d/s): ")

	line, err := c.readLine(ctx)
	if err != nil {
		return investigation.Exit, err
	}
	return ParseAction(line)
}

// PromptAccusation asks for a suspect until a non-empty name is typed.
func (c *Console) PromptAccusation(ctx context.Context) (string, error) {
	if len(c.suspects) > 0 {
		c.println(c.styles.muted.Render("Suspeitos: " + strings.Join(c.suspects, ", ")))
	}
	for {
		c.print("Quem voce acusa? ")
		line, err := c.readLine(ctx)
		if err != nil {
			if errors.Is(err, investigation.ErrInvalidInput) {
				c.println(c.styles.warning.Render("Nome longo demais."))
				continue
			}
			return "", err
		}
		if accused := strings.TrimSpace(line); accused != "" {
			return accused, nil
		}
	}
}

// readLine waits for the next line of input until ctx is done. The read itself keeps going in the
// background and its line is returned by the next call.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "read line")
	}
	if c.pending == nil {
		c.pending = make(chan lineResult, 1)
		go func(r *bufio.Reader, pending chan<- lineResult) {
			line, err := nextLine(r)
			pending <- lineResult{line: line, err: err}
		}(c.reader, c.pending)
	}

	var res lineResult
	select {
	case <-ctx.Done():
		// Finish the prompt line before the caller reacts to the cancellation.
		c.println("")
		return "", errors.Wrap(ctx.Err(), "read line")
	case res = <-c.pending:
		c.pending = nil
	}

	switch {
	case errors.Is(res.err, io.EOF):
		// Finish the prompt line before the caller reacts to the end of input.
		c.println("")
		return "", io.EOF
	case errors.Is(res.err, investigation.ErrInvalidInput):
		return "", res.err
	case res.err != nil:
		return "", errors.Wrap(res.err, "read line")
	}
	return res.line, nil
}

// nextLine reads one line without its line ending. Lines longer than maxLineLength are consumed
// and reported as investigation.ErrInvalidInput.
func nextLine(r *bufio.Reader) (string, error) {
	var (
		line    []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			return "", err //nolint:wrapcheck // io.EOF must stay comparable
		}
		if !tooLong {
			if len(line)+len(chunk) > maxLineLength {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", errors.Wrap(investigation.ErrInvalidInput, "line too long", slog.Int("limit", maxLineLength))
	}
	return string(line), nil
}

// Present prints an investigation event.
func (c *Console) Present(ctx context.Context, e investigation.Event) {
	c.logger.LogAttrs(ctx, slog.LevelDebug, "present event", slog.String("kind", e.Kind.String()))
	switch e.Kind {
	case investigation.RoomEntered:
		c.println("")
		c.println("=> Voce esta no(a): " + c.styles.room.Render(e.Room))
	case investigation.ClueFound:
		c.println("Pista encontrada: " + c.styles.clue.Render(e.Clue))
	case investigation.PathRejected:
		side := "esquerda"
		if e.Direction == mansion.Right {
			side = "direita"
		}
		c.println(c.styles.warning.Render(fmt.Sprintf("Nao ha caminho para a %s a partir desta sala.", side)))
	case investigation.InputRejected:
		c.println(c.styles.warning.Render("Escolha invalida. Por favor, digite 'e', 'd' ou 's'."))
	case investigation.DeadEnd:
		c.println("")
		c.println("--- FIM DA LINHA ---")
		c.println("Voce encontrou um comodo sem mais caminhos. A exploracao terminou.")
	case investigation.LeftMansion:
		c.println("")
		c.println("Saindo da mansao...")
	case investigation.CluesReviewed:
		c.println("")
		c.println("Pistas coletadas:")
		for _, clue := range e.Clues {
			c.println("  - " + c.styles.clue.Render(clue))
		}
	case investigation.NoCluesCollected:
		c.println("")
		c.println("Nenhuma pista coletada. Sem provas nao ha acusacao. Ate a proxima!")
	case investigation.VerdictReached:
		c.presentVerdict(e.Verdict)
	}
}

func (c *Console) presentVerdict(v investigation.Verdict) {
	c.println("")
	for _, clue := range v.Evidence {
		c.println("  * " + c.styles.clue.Render(clue))
	}
	if v.Outcome == investigation.CaseClosed {
		c.println(c.styles.guilty.Render(fmt.Sprintf("CASO ENCERRADO: %s e culpado(a)! %d pistas confirmam a acusacao.",
			v.Accused, v.Count())))
		return
	}
	c.println(c.styles.open.Render(fmt.Sprintf("Provas insuficientes contra %s (%d pista(s)). O caso continua em aberto.",
		v.Accused, v.Count())))
	if suggestion := c.suggest(v.Accused); suggestion != "" {
		c.println(c.styles.muted.Render(fmt.Sprintf("Voce quis dizer %s?", suggestion)))
	}
}

// suggest returns the known suspect closest to an unknown name, or "".
func (c *Console) suggest(accused string) string {
	if c.matcher == nil || slices.Contains(c.suspects, accused) {
		return ""
	}
	return c.matcher.Closest(accused)
}

func (c *Console) print(s string) {
	_, _ = fmt.Fprint(c.out, s)
}

func (c *Console) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}
