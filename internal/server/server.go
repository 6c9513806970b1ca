package server

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/jimburton/poker/internal/game"
)

// Server hosts one table over WebSocket. Remote clients join by name;
// once the configured number of remote players is seated the remaining
// seats are filled with built-in strategies and the game runs to
// completion, after which the server shuts down.
type Server struct {
	cfg      *Config
	logger   *log.Logger
	upgrader websocket.Upgrader
	clock    quartz.Clock
	rng      *rand.Rand

	mu          sync.Mutex
	game        *game.Game
	connections map[*Connection]bool
	remotes     int
	started     bool

	ready     chan struct{}
	readyOnce sync.Once
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithClock sets the clock used for decision timeouts. Tests pass a
// quartz mock.
func WithClock(clock quartz.Clock) ServerOption {
	return func(s *Server) { s.clock = clock }
}

// WithRand sets the random source for deck shuffling and table names.
func WithRand(rng *rand.Rand) ServerOption {
	return func(s *Server) { s.rng = rng }
}

// NewServer creates a server for the configured table.
func NewServer(cfg *Config, logger *log.Logger, opts ...ServerOption) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger.WithPrefix("server"),
		upgrader: websocket.Upgrader{
			// Origin checking is the deployment's concern.
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		clock:       quartz.NewReal(),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		connections: make(map[*Connection]bool),
		ready:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.game = game.New(cfg.Table.BigBlind, cfg.Table.Seats,
		game.WithLogger(logger.WithPrefix("game")),
		game.WithRand(s.rng))
	return s
}

// Run serves until the game completes or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	httpServer := &http.Server{Addr: s.cfg.Addr(), Handler: mux}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", "addr", s.cfg.Addr())
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		s.closeConnections()
		return httpServer.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		defer cancel()
		return s.runGame(ctx)
	})

	return g.Wait()
}

// runGame waits for the table to fill, seats the auto players and
// drives the engine. The engine runs entirely on this goroutine.
func (s *Server) runGame(ctx context.Context) error {
	s.logger.Info("waiting for players", "remote_players", s.cfg.Table.RemotePlayers)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
	}

	s.mu.Lock()
	s.started = true
	if err := s.seatAutoPlayers(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	winner, err := s.game.Play()
	if err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}
	s.logger.Info("game complete", "winner", winner)
	return nil
}

// seatRemote seats a WebSocket client, returning the possibly
// disambiguated name. Called from connection read pumps; the engine is
// not running yet, so joining under the lock is safe.
func (s *Server) seatRemote(name string, c *Connection) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return "", fmt.Errorf("game already in progress")
	}
	if s.remotes >= s.cfg.Table.RemotePlayers {
		return "", fmt.Errorf("all remote seats are taken")
	}

	timeout := time.Duration(s.cfg.Table.TimeoutSeconds) * time.Second
	agent := NewRemoteAgent(name, c, s.logger, timeout, s.clock)
	p := game.NewPlayer(name, agent)
	p.AttachSink(c)
	if err := s.game.Join(p); err != nil {
		return "", err
	}
	c.setAgent(agent)
	s.game.Subscribe(c)
	s.remotes++

	// Join's broadcast predates the subscription, so acknowledge the
	// seat (with the possibly disambiguated name) directly.
	if msg, err := NewMessage(MessageTypeJoined, JoinedData{Name: p.Name, BankRoll: p.BankRoll}); err == nil {
		_ = c.SendMessage(msg)
	}

	if s.remotes == s.cfg.Table.RemotePlayers {
		s.readyOnce.Do(func() { close(s.ready) })
	}
	return p.Name, nil
}

// seatAutoPlayers fills the remaining seats with built-in strategies,
// cycling through the six-max, modest and calling agents.
func (s *Server) seatAutoPlayers() error {
	empty := s.cfg.Table.Seats - len(s.game.Players())
	if empty <= 0 {
		return nil
	}
	names, err := game.TableNames(s.rng, empty)
	if err != nil {
		return err
	}
	for i, name := range names {
		var agent game.Agent
		switch i % 3 {
		case 0:
			agent = game.SixMaxAgent{}
		case 1:
			agent = game.ModestAgent{Rand: rand.New(rand.NewSource(s.rng.Int63()))}
		default:
			agent = game.CallingAgent{}
		}
		if err := s.game.Join(game.NewPlayer(name, agent)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("failed to upgrade connection", "error", err)
		return
	}

	client := NewConnection(conn, s, s.logger)
	s.mu.Lock()
	s.connections[client] = true
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("client connected", "total", total)

	client.Start()
	go func() {
		<-client.Done()
		s.mu.Lock()
		delete(s.connections, client)
		s.mu.Unlock()
		s.logger.Info("client disconnected", "player", client.Name())
	}()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}

func (s *Server) closeConnections() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.connections {
		_ = conn.Close()
	}
}
