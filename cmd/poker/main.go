package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/jimburton/poker/internal/game"
	"github.com/jimburton/poker/poker"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F5FD7")).
			Padding(0, 1).
			Bold(true)

	stageStyle = lipgloss.NewStyle().Bold(true)

	redCardStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#D70000"))
	blackCardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))

	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAF5F")).Bold(true)
	winnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D7AF00")).Bold(true)
)

type CLI struct {
	Players  int    `short:"p" default:"4" help:"Number of players at the table (2-10)."`
	BigBlind int    `short:"b" default:"20" help:"Big blind; the buy-in is 100 big blinds."`
	Seed     int64  `help:"Random seed, 0 means time-based."`
	Auto     bool   `help:"Watch the built-in strategies play each other."`
	Name     string `default:"You" help:"Your name at the table."`
	LogLevel string `default:"warn" help:"Log level (debug, info, warn, error)."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	if cli.Players < 2 || cli.Players > 10 {
		fmt.Fprintln(os.Stderr, "players must be between 2 and 10")
		ctx.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "poker"})
	logger.SetLevel(parseLevel(cli.LogLevel))

	fmt.Println(titleStyle.Render(" Texas Hold'em "))
	fmt.Println()

	if err := run(cli, logger); err != nil {
		logger.Fatal("game failed", "error", err)
	}
	ctx.Exit(0)
}

func run(cli CLI, logger *log.Logger) error {
	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := game.New(cli.BigBlind, cli.Players,
		game.WithLogger(logger.WithPrefix("game")),
		game.WithRand(rng))
	g.Subscribe(&consoleSink{out: os.Stdout, you: cli.Name})

	autoSeats := cli.Players
	if !cli.Auto {
		human := game.NewPlayer(cli.Name, &humanAgent{in: bufio.NewReader(os.Stdin), out: os.Stdout})
		human.AttachSink(&consoleSink{out: os.Stdout, you: cli.Name, private: true})
		if err := g.Join(human); err != nil {
			return err
		}
		autoSeats--
	}

	names, err := game.TableNames(rng, autoSeats)
	if err != nil {
		return err
	}
	for i, name := range names {
		var agent game.Agent
		switch i % 3 {
		case 0:
			agent = game.SixMaxAgent{}
		case 1:
			agent = game.ModestAgent{Rand: rand.New(rand.NewSource(rng.Int63()))}
		default:
			agent = game.CallingAgent{}
		}
		if err := g.Join(game.NewPlayer(name, agent)); err != nil {
			return err
		}
	}

	winner, err := g.Play()
	if err != nil {
		return err
	}
	fmt.Println(winnerStyle.Render(fmt.Sprintf("%s wins the game", winner)))
	return nil
}

func parseLevel(s string) log.Level {
	switch s {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// humanAgent prompts on the terminal for each decision. Malformed and
// illegal input re-prompts; end of input folds for the rest of the
// game.
type humanAgent struct {
	in  *bufio.Reader
	out io.Writer
}

func (h *humanAgent) Decide(req game.BetRequest) (game.Bet, error) {
	fmt.Fprintf(h.out, "\nYour hand: %s", renderCards(req.Hole))
	if len(req.Community) > 0 {
		fmt.Fprintf(h.out, "  board: %s", renderCards(req.Community))
	}
	fmt.Fprintf(h.out, "\nBank roll %d, %d to call (min bet %d)\n", req.BankRoll, req.Call, req.Min)

	for {
		fmt.Fprint(h.out, promptStyle.Render("fold/check/call/raise <n>/allin> "))
		line, err := h.in.ReadString('\n')
		if err != nil {
			fmt.Fprintln(h.out, "\nno more input, folding")
			return game.Bet{Action: game.Fold}, nil
		}
		fields := strings.Fields(strings.ToLower(line))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "fold", "f":
			return game.Bet{Action: game.Fold}, nil
		case "check", "x":
			if req.Call > 0 {
				fmt.Fprintf(h.out, "there is %d to call\n", req.Call)
				continue
			}
			return game.Bet{Action: game.Check}, nil
		case "call", "c":
			if req.BankRoll <= req.Call {
				return game.Bet{Action: game.AllIn, Amount: req.BankRoll}, nil
			}
			return game.Bet{Action: game.Call, Amount: req.Call}, nil
		case "raise", "r":
			if len(fields) < 2 {
				fmt.Fprintln(h.out, "raise needs an amount")
				continue
			}
			amount, err := strconv.Atoi(fields[1])
			if err != nil || amount <= req.Call {
				fmt.Fprintf(h.out, "raise must be a number above %d\n", req.Call)
				continue
			}
			if amount >= req.BankRoll {
				return game.Bet{Action: game.AllIn, Amount: req.BankRoll}, nil
			}
			return game.Bet{Action: game.Raise, Amount: amount}, nil
		case "allin", "a":
			return game.Bet{Action: game.AllIn, Amount: req.BankRoll}, nil
		default:
			fmt.Fprintf(h.out, "unknown action %q\n", fields[0])
		}
	}
}

// consoleSink renders game events. The private variant additionally
// shows hole cards, and is attached only to the human player.
type consoleSink struct {
	out     io.Writer
	you     string
	private bool
}

func (s *consoleSink) OnEvent(e game.Event) {
	switch ev := e.(type) {
	case game.PlayersAnnouncedEvent:
		fmt.Fprintf(s.out, "\n%s\n", stageStyle.Render("--- New round ---"))
		for _, seat := range ev.Seats {
			marker := " "
			if seat.Name == ev.Dealer {
				marker = "D"
			}
			fmt.Fprintf(s.out, " %s %-12s %5d\n", marker, seat.Name, seat.BankRoll)
		}
	case game.HoleCardsEvent:
		if s.private {
			fmt.Fprintf(s.out, "Dealt to %s: %s\n", ev.Name, renderCards(ev.Cards))
		}
	case game.StageEvent:
		header := stageStyle.Render(fmt.Sprintf("*** %s ***", strings.ToUpper(ev.Stage.String())))
		if len(ev.Community) > 0 {
			fmt.Fprintf(s.out, "%s %s\n", header, renderCards(ev.Community))
		} else {
			fmt.Fprintf(s.out, "%s\n", header)
		}
	case game.BetPlacedEvent:
		fmt.Fprintf(s.out, "%s: %s (pot %d)\n", ev.Player, ev.Bet, ev.Pot)
	case game.RoundWinnerEvent:
		for _, ph := range ev.Winner.Hands {
			fmt.Fprintf(s.out, "%s\n", winnerStyle.Render(
				fmt.Sprintf("%s wins with %s", ph.Name, ph.Hand)))
		}
		for name, amount := range ev.Winnings {
			fmt.Fprintf(s.out, "  %s collects %d\n", name, amount)
		}
	case game.GameWinnerEvent:
		fmt.Fprintf(s.out, "\n%s\n", winnerStyle.Render(
			fmt.Sprintf("%s takes the table with %d chips", ev.Name, ev.BankRoll)))
	}
}

func renderCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.Suit.IsRed() {
			parts[i] = redCardStyle.Render(c.String())
		} else {
			parts[i] = blackCardStyle.Render(c.String())
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
