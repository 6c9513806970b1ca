package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimburton/poker/poker"
)

func holeCards(r1 poker.Rank, s1 poker.Suit, r2 poker.Rank, s2 poker.Suit) []poker.Card {
	return []poker.Card{{Rank: r1, Suit: s1}, {Rank: r2, Suit: s2}}
}

func TestCallingAgent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  BetRequest
		want Action
	}{
		{"broke folds", BetRequest{BankRoll: 0, Call: 10}, Fold},
		{"short stack goes all in", BetRequest{BankRoll: 10, Call: 20}, AllIn},
		{"checks for free", BetRequest{BankRoll: 100, Call: 0}, Check},
		{"calls the bet", BetRequest{BankRoll: 100, Call: 20}, Call},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			bet, err := CallingAgent{}.Decide(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, bet.Action)
		})
	}
}

func TestModestAgentStaysLegal(t *testing.T) {
	t.Parallel()

	a := ModestAgent{Rand: rand.New(rand.NewSource(9))}
	for trial := 0; trial < 500; trial++ {
		req := BetRequest{Call: trial % 60, Min: 20, BankRoll: 30 + trial%200}
		bet, err := a.Decide(req)
		require.NoError(t, err)
		switch bet.Action {
		case Raise:
			assert.Greater(t, bet.Amount, req.Call, "raise must exceed the call")
			assert.Less(t, bet.Amount, req.BankRoll, "modest raises keep a chip in hand")
		case AllIn:
			assert.Equal(t, req.BankRoll, bet.Amount)
		case Call:
			assert.GreaterOrEqual(t, req.BankRoll, req.Call)
		}
	}
}

func TestSixMaxFoldsJunkPreFlop(t *testing.T) {
	t.Parallel()

	req := BetRequest{
		Stage: PreFlop, Call: 20, Min: 20, BankRoll: 2000,
		Hole: holeCards(poker.Seven, poker.Clubs, poker.Two, poker.Hearts),
	}
	bet, err := SixMaxAgent{}.Decide(req)
	require.NoError(t, err)
	assert.Equal(t, Fold, bet.Action)
}

func TestSixMaxPlaysStrongHoldings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hole []poker.Card
	}{
		{"pocket pair", holeCards(poker.Six, poker.Clubs, poker.Six, poker.Hearts)},
		{"ace jack offsuit", holeCards(poker.Ace, poker.Clubs, poker.Jack, poker.Hearts)},
		{"ace five suited", holeCards(poker.Five, poker.Clubs, poker.Ace, poker.Clubs)},
		{"king queen offsuit", holeCards(poker.King, poker.Clubs, poker.Queen, poker.Hearts)},
		{"king ten suited", holeCards(poker.King, poker.Spades, poker.Ten, poker.Spades)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := BetRequest{Stage: PreFlop, Call: 20, Min: 20, BankRoll: 2000, Hole: tt.hole}
			bet, err := SixMaxAgent{}.Decide(req)
			require.NoError(t, err)
			assert.Equal(t, Raise, bet.Action, "strong holdings open with a raise")
			assert.Equal(t, 40, bet.Amount)
		})
	}
}

func TestSixMaxCapsRaisesPerStage(t *testing.T) {
	t.Parallel()

	req := BetRequest{Stage: Flop, Call: 20, Min: 20, BankRoll: 2000, Cycle: 2,
		Hole: holeCards(poker.Six, poker.Clubs, poker.Six, poker.Hearts)}
	bet, err := SixMaxAgent{}.Decide(req)
	require.NoError(t, err)
	assert.Equal(t, Call, bet.Action, "after two raises the agent flattens to a call")
}
