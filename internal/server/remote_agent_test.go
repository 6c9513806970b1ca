package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimburton/poker/internal/game"
)

type fakeSender struct {
	sent chan *Message
	fail bool
}

func newFakeSender() *fakeSender {
	return &fakeSender{sent: make(chan *Message, 16)}
}

func (f *fakeSender) SendMessage(m *Message) error {
	if f.fail {
		return errors.New("connection gone")
	}
	f.sent <- m
	return nil
}

func testRequest() game.BetRequest {
	return game.BetRequest{Call: 20, Min: 20, Stage: game.Flop, BankRoll: 500}
}

func TestRemoteAgentRoundTrip(t *testing.T) {
	t.Parallel()

	conn := newFakeSender()
	agent := NewRemoteAgent("ann", conn, log.New(io.Discard), 30*time.Second, quartz.NewMock(t))

	done := make(chan struct{})
	var bet game.Bet
	var err error
	go func() {
		defer close(done)
		bet, err = agent.Decide(testRequest())
	}()

	msg := <-conn.sent
	require.Equal(t, MessageTypeBetRequest, msg.Type)
	var data BetRequestData
	require.NoError(t, json.Unmarshal(msg.Data, &data))
	assert.Equal(t, 20, data.Call)
	assert.Equal(t, "Flop", data.Stage)
	assert.Equal(t, 500, data.BankRoll)

	agent.HandleResponse(BetResponseData{Action: "raise", Amount: 60})
	<-done
	require.NoError(t, err)
	assert.Equal(t, game.Bet{Action: game.Raise, Amount: 60}, bet)
}

func TestRemoteAgentTimeoutFolds(t *testing.T) {
	t.Parallel()

	mClock := quartz.NewMock(t)
	conn := newFakeSender()
	agent := NewRemoteAgent("ann", conn, log.New(io.Discard), 30*time.Second, mClock)

	done := make(chan struct{})
	var bet game.Bet
	var err error
	go func() {
		defer close(done)
		bet, err = agent.Decide(testRequest())
	}()

	<-conn.sent
	// Give Decide a moment to arm its timer before advancing the clock.
	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	mClock.Advance(30 * time.Second).MustWait(ctx)

	<-done
	require.NoError(t, err)
	assert.Equal(t, game.Fold, bet.Action, "timeout maps to a fold at the integration layer")
}

func TestRemoteAgentDisconnectFolds(t *testing.T) {
	t.Parallel()

	conn := newFakeSender()
	conn.fail = true
	agent := NewRemoteAgent("ann", conn, log.New(io.Discard), 30*time.Second, quartz.NewMock(t))

	bet, err := agent.Decide(testRequest())
	require.NoError(t, err)
	assert.Equal(t, game.Fold, bet.Action)
}

func TestRemoteAgentUnknownActionFolds(t *testing.T) {
	t.Parallel()

	conn := newFakeSender()
	agent := NewRemoteAgent("ann", conn, log.New(io.Discard), 30*time.Second, quartz.NewMock(t))

	done := make(chan struct{})
	var bet game.Bet
	go func() {
		defer close(done)
		bet, _ = agent.Decide(testRequest())
	}()

	<-conn.sent
	agent.HandleResponse(BetResponseData{Action: "dance"})
	<-done
	assert.Equal(t, game.Fold, bet.Action)
}

func TestRemoteAgentDropsExcessResponses(t *testing.T) {
	t.Parallel()

	conn := newFakeSender()
	agent := NewRemoteAgent("ann", conn, log.New(io.Discard), 30*time.Second, quartz.NewMock(t))

	// One response buffers for the next request; the second must be
	// dropped without blocking.
	agent.HandleResponse(BetResponseData{Action: "check"})
	agent.HandleResponse(BetResponseData{Action: "call"})

	bet, err := agent.Decide(testRequest())
	require.NoError(t, err)
	<-conn.sent
	assert.Equal(t, game.Check, bet.Action)
}
