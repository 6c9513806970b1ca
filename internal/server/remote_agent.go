package server

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/jimburton/poker/internal/game"
)

// sender is the slice of the connection the agent needs, separated for
// testing.
type sender interface {
	SendMessage(msg *Message) error
}

// RemoteAgent bridges the strictly serial engine to a WebSocket client.
// Decide runs on the engine goroutine: it sends the bet request over
// the socket, then blocks until the connection's read pump delivers the
// reply through decisionChan. The engine itself stays synchronous.
//
// A timeout, disconnect or malformed reply is mapped to a fold here, at
// the integration layer; the engine never sees a missing decision from
// a remote player.
type RemoteAgent struct {
	name         string
	conn         sender
	logger       *log.Logger
	decisionChan chan game.Bet
	timeout      time.Duration
	clock        quartz.Clock
}

// NewRemoteAgent creates an agent for one remote player.
func NewRemoteAgent(name string, conn sender, logger *log.Logger, timeout time.Duration, clock quartz.Clock) *RemoteAgent {
	return &RemoteAgent{
		name:         name,
		conn:         conn,
		logger:       logger.WithPrefix("remote-agent").With("player", name),
		decisionChan: make(chan game.Bet, 1),
		timeout:      timeout,
		clock:        clock,
	}
}

// Decide implements game.Agent.
func (a *RemoteAgent) Decide(req game.BetRequest) (game.Bet, error) {
	msg, err := NewMessage(MessageTypeBetRequest, BetRequestData{
		Call:      req.Call,
		Min:       req.Min,
		Stage:     req.Stage.String(),
		Cycle:     req.Cycle,
		BankRoll:  req.BankRoll,
		Community: wireCards(req.Community),
		Hole:      wireCards(req.Hole),
		TimeoutS:  int(a.timeout / time.Second),
	})
	if err != nil {
		return game.Bet{}, err
	}

	if err := a.conn.SendMessage(msg); err != nil {
		a.logger.Warn("client unreachable, folding", "error", err)
		return game.Bet{Action: game.Fold}, nil
	}

	timedOut := make(chan struct{})
	timer := a.clock.AfterFunc(a.timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	select {
	case bet := <-a.decisionChan:
		a.logger.Debug("decision received", "bet", bet)
		return bet, nil
	case <-timedOut:
		a.logger.Warn("decision timeout, folding", "timeout", a.timeout)
		return game.Bet{Action: game.Fold}, nil
	}
}

// HandleResponse feeds a reply from the read pump to the blocked
// Decide. A reply with no request pending is dropped.
func (a *RemoteAgent) HandleResponse(data BetResponseData) {
	var bet game.Bet
	switch data.Action {
	case "fold":
		bet = game.Bet{Action: game.Fold}
	case "check":
		bet = game.Bet{Action: game.Check}
	case "call":
		bet = game.Bet{Action: game.Call, Amount: data.Amount}
	case "raise":
		bet = game.Bet{Action: game.Raise, Amount: data.Amount}
	case "allin":
		bet = game.Bet{Action: game.AllIn, Amount: data.Amount}
	default:
		a.logger.Warn("unknown action from client, folding", "action", data.Action)
		bet = game.Bet{Action: game.Fold}
	}

	select {
	case a.decisionChan <- bet:
	default:
		a.logger.Warn("unsolicited decision dropped", "action", data.Action)
	}
}
