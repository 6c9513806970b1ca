package server

import (
	"encoding/json"
	"time"

	"github.com/jimburton/poker/internal/game"
	"github.com/jimburton/poker/poker"
)

// MessageType identifies a wire message.
type MessageType string

const (
	// Client to server.
	MessageTypeJoin        MessageType = "join"
	MessageTypeBetResponse MessageType = "bet_response"

	// Server to client.
	MessageTypeJoined      MessageType = "joined"
	MessageTypeError       MessageType = "error"
	MessageTypeBetRequest  MessageType = "bet_request"
	MessageTypePlayers     MessageType = "players"
	MessageTypeHoleCards   MessageType = "hole_cards"
	MessageTypeBetPlaced   MessageType = "bet_placed"
	MessageTypeStage       MessageType = "stage"
	MessageTypeRoundWinner MessageType = "round_winner"
	MessageTypeGameWinner  MessageType = "game_winner"
)

// String returns the string representation of the message type.
func (mt MessageType) String() string {
	return string(mt)
}

// Message is the wire envelope for all WebSocket traffic.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a message with the current timestamp.
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Card is the wire form of a card, carrying both the comparable values
// and a display string.
type Card struct {
	Rank    int    `json:"rank"`
	Suit    int    `json:"suit"`
	Display string `json:"display"`
}

func wireCard(c poker.Card) Card {
	return Card{Rank: int(c.Rank), Suit: int(c.Suit), Display: c.String()}
}

func wireCards(cards []poker.Card) []Card {
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = wireCard(c)
	}
	return out
}

// Client to server messages.

type JoinData struct {
	Name string `json:"name"`
}

type BetResponseData struct {
	Action string `json:"action"` // fold, check, call, raise, allin
	Amount int    `json:"amount,omitempty"`
}

// Server to client messages.

type JoinedData struct {
	Name     string `json:"name"` // possibly disambiguated
	BankRoll int    `json:"bankRoll"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type BetRequestData struct {
	Call      int    `json:"call"`
	Min       int    `json:"min"`
	Stage     string `json:"stage"`
	Cycle     int    `json:"cycle"`
	BankRoll  int    `json:"bankRoll"`
	Community []Card `json:"community"`
	Hole      []Card `json:"hole"`
	TimeoutS  int    `json:"timeoutSeconds"`
}

type SeatData struct {
	Name     string `json:"name"`
	BankRoll int    `json:"bankRoll"`
}

type PlayersData struct {
	Seats  []SeatData `json:"seats"`
	Dealer string     `json:"dealer"`
}

type HoleCardsData struct {
	Cards []Card `json:"cards"`
}

type BetPlacedData struct {
	Player string `json:"player"`
	Bet    string `json:"bet"`
	Pot    int    `json:"pot"`
}

type StageData struct {
	Stage     string `json:"stage"`
	Community []Card `json:"community"`
}

type WinnerHandData struct {
	Name  string `json:"name"`
	Hand  string `json:"hand"`
	Cards []Card `json:"cards"`
}

type RoundWinnerData struct {
	Winners  []WinnerHandData `json:"winners"`
	Winnings map[string]int   `json:"winnings"`
}

type GameWinnerData struct {
	Name     string `json:"name"`
	BankRoll int    `json:"bankRoll"`
}

// messageFromEvent translates an engine event into its wire message.
// Unknown events translate to nil and are not transmitted.
func messageFromEvent(e game.Event) (*Message, error) {
	switch ev := e.(type) {
	case game.PlayersAnnouncedEvent:
		seats := make([]SeatData, len(ev.Seats))
		for i, s := range ev.Seats {
			seats[i] = SeatData{Name: s.Name, BankRoll: s.BankRoll}
		}
		return NewMessage(MessageTypePlayers, PlayersData{Seats: seats, Dealer: ev.Dealer})
	case game.HoleCardsEvent:
		return NewMessage(MessageTypeHoleCards, HoleCardsData{Cards: wireCards(ev.Cards)})
	case game.BetPlacedEvent:
		return NewMessage(MessageTypeBetPlaced, BetPlacedData{
			Player: ev.Player, Bet: ev.Bet.String(), Pot: ev.Pot,
		})
	case game.StageEvent:
		return NewMessage(MessageTypeStage, StageData{
			Stage: ev.Stage.String(), Community: wireCards(ev.Community),
		})
	case game.RoundWinnerEvent:
		winners := make([]WinnerHandData, len(ev.Winner.Hands))
		for i, ph := range ev.Winner.Hands {
			winners[i] = WinnerHandData{Name: ph.Name, Hand: ph.Hand.String(), Cards: wireCards(ph.Cards)}
		}
		return NewMessage(MessageTypeRoundWinner, RoundWinnerData{Winners: winners, Winnings: ev.Winnings})
	case game.GameWinnerEvent:
		return NewMessage(MessageTypeGameWinner, GameWinnerData{Name: ev.Name, BankRoll: ev.BankRoll})
	default:
		return nil, nil
	}
}
