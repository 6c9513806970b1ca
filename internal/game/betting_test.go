package game

import (
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptAgent plays a fixed sequence of bets, then falls back to the
// calling strategy.
type scriptAgent struct {
	bets []Bet
}

func (a *scriptAgent) Decide(req BetRequest) (Bet, error) {
	if len(a.bets) == 0 {
		return CallingAgent{}.Decide(req)
	}
	b := a.bets[0]
	a.bets = a.bets[1:]
	if b.Action == AllIn {
		b.Amount = req.BankRoll
	}
	return b, nil
}

// failingAgent simulates a decision provider that went away.
type failingAgent struct{}

func (failingAgent) Decide(BetRequest) (Bet, error) {
	return Bet{}, ErrNoDecision
}

type recordSink struct {
	events []Event
}

func (s *recordSink) OnEvent(e Event) {
	s.events = append(s.events, e)
}

func newTestGame(t *testing.T, bigBlind int, seed int64) *Game {
	t.Helper()
	return New(bigBlind, 9,
		WithRand(rand.New(rand.NewSource(seed))),
		WithLogger(log.New(io.Discard)))
}

func TestSidePotRestrictedToCoveringPlayers(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, 20, 1)
	ann := NewPlayer("ann", &scriptAgent{bets: []Bet{{Action: Raise, Amount: 40}}})
	ben := NewPlayer("ben", &scriptAgent{bets: []Bet{{Action: AllIn}}})
	cam := NewPlayer("cam", &scriptAgent{bets: []Bet{{Action: Call}}})
	require.NoError(t, g.Join(ann))
	require.NoError(t, g.Join(ben))
	require.NoError(t, g.Join(cam))
	ben.BankRoll = 30

	g.stage = PreFlop
	require.NoError(t, g.placeBets())

	// ann and cam each put in 40, ben 30: the 30s land in the main
	// pot and the excess goes to a side pot ben cannot win.
	assert.Equal(t, 90, g.pot)
	require.Len(t, g.sidePots, 1)
	assert.Equal(t, 20, g.sidePots[0].Amount)
	assert.Equal(t, 30, g.sidePots[0].Stake)
	assert.Equal(t, []string{"ann", "cam"}, g.sidePots[0].Eligible)
	assert.True(t, ben.AllIn)

	total := ann.TotalBet + ben.TotalBet + cam.TotalBet
	assert.Equal(t, total, g.pot+g.sidePots[0].Amount, "chips must be conserved across pots")
}

func TestBettingEndsWhenTargetFolds(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, 20, 1)
	ann := NewPlayer("ann", &scriptAgent{bets: []Bet{{Action: Fold}}})
	ben := NewPlayer("ben", &scriptAgent{})
	cam := NewPlayer("cam", &scriptAgent{})
	require.NoError(t, g.Join(ann))
	require.NoError(t, g.Join(ben))
	require.NoError(t, g.Join(cam))

	g.stage = PreFlop
	require.NoError(t, g.placeBets())

	assert.True(t, ann.Folded)
	assert.False(t, ben.Folded)
	assert.False(t, cam.Folded)
	assert.Equal(t, 0, g.pot)
}

func TestBettingEndsWhenTargetGoesAllIn(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, 20, 1)
	ann := NewPlayer("ann", &scriptAgent{bets: []Bet{{Action: AllIn}}})
	ben := NewPlayer("ben", &scriptAgent{})
	cam := NewPlayer("cam", &scriptAgent{})
	require.NoError(t, g.Join(ann))
	require.NoError(t, g.Join(ben))
	require.NoError(t, g.Join(cam))
	ann.BankRoll = 50

	g.stage = PreFlop
	require.NoError(t, g.placeBets())

	assert.True(t, ann.AllIn)
	require.Len(t, g.sidePots, 1)
	assert.Equal(t, []string{"ben", "cam"}, g.sidePots[0].Eligible)
	// An all-in does not change the outstanding call, so ben and cam
	// check behind and the stage closes.
	assert.Equal(t, 0, ben.TotalBet)
	assert.Equal(t, 0, cam.TotalBet)
	assert.Equal(t, 50, g.pot)
	assert.Equal(t, 0, g.sidePots[0].Amount)
}

func TestCheckAgainstOutstandingCallIsViolation(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, 20, 1)
	ann := NewPlayer("ann", &scriptAgent{bets: []Bet{{Action: Raise, Amount: 40}}})
	ben := NewPlayer("ben", &scriptAgent{bets: []Bet{{Action: Check}}})
	require.NoError(t, g.Join(ann))
	require.NoError(t, g.Join(ben))

	g.stage = PreFlop
	err := g.placeBets()
	var pv *ProtocolViolationError
	require.ErrorAs(t, err, &pv)
	assert.Equal(t, "ben", pv.Player)
	assert.Equal(t, PreFlop, pv.Stage)
	assert.Equal(t, 40, pv.Call)
}

func TestRaiseMustExceedCall(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, 20, 1)
	ann := NewPlayer("ann", &scriptAgent{bets: []Bet{{Action: Raise, Amount: 40}}})
	ben := NewPlayer("ben", &scriptAgent{bets: []Bet{{Action: Raise, Amount: 40}}})
	require.NoError(t, g.Join(ann))
	require.NoError(t, g.Join(ben))

	g.stage = PreFlop
	err := g.placeBets()
	var pv *ProtocolViolationError
	require.ErrorAs(t, err, &pv)
	assert.Equal(t, "ben", pv.Player)
}

func TestLostProviderIsFatal(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, 20, 1)
	require.NoError(t, g.Join(NewPlayer("ann", failingAgent{})))
	require.NoError(t, g.Join(NewPlayer("ben", &scriptAgent{})))

	_, err := g.Play()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoDecision))
}

func TestRaiseReopensActionForEarlierCallers(t *testing.T) {
	t.Parallel()

	// cam raises after ann and ben have already matched; both must be
	// asked again before the stage closes.
	g := newTestGame(t, 20, 1)
	ann := NewPlayer("ann", &scriptAgent{bets: []Bet{{Action: Check}, {Action: Call}}})
	ben := NewPlayer("ben", &scriptAgent{bets: []Bet{{Action: Check}, {Action: Call}}})
	cam := NewPlayer("cam", &scriptAgent{bets: []Bet{{Action: Raise, Amount: 30}}})
	require.NoError(t, g.Join(ann))
	require.NoError(t, g.Join(ben))
	require.NoError(t, g.Join(cam))

	g.stage = Flop
	require.NoError(t, g.placeBets())

	assert.Equal(t, 30, ann.TotalBet)
	assert.Equal(t, 30, ben.TotalBet)
	assert.Equal(t, 30, cam.TotalBet)
	assert.Equal(t, 90, g.pot)
}
