package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the server configuration, loaded from an HCL file.
type Config struct {
	Server ServerSettings `hcl:"server,block"`
	Table  TableSettings  `hcl:"table,block"`
}

// ServerSettings contains process-level configuration.
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// TableSettings configures the single table the server runs. The game
// starts once RemotePlayers clients have joined; any remaining seats up
// to Seats are filled with built-in strategies.
type TableSettings struct {
	BigBlind       int `hcl:"big_blind"`
	Seats          int `hcl:"seats,optional"`
	RemotePlayers  int `hcl:"remote_players,optional"`
	TimeoutSeconds int `hcl:"timeout_seconds,optional"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
		Table: TableSettings{
			BigBlind:       20,
			Seats:          6,
			RemotePlayers:  1,
			TimeoutSeconds: 30,
		},
	}
}

// LoadConfig loads configuration from an HCL file, falling back to
// defaults when the file does not exist.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Server.Address == "" {
		cfg.Server.Address = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Table.Seats == 0 {
		cfg.Table.Seats = 6
	}
	if cfg.Table.RemotePlayers == 0 {
		cfg.Table.RemotePlayers = 1
	}
	if cfg.Table.TimeoutSeconds == 0 {
		cfg.Table.TimeoutSeconds = 30
	}

	return &cfg, nil
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Table.BigBlind < 2 {
		return fmt.Errorf("big blind must be at least 2, got %d", c.Table.BigBlind)
	}
	if c.Table.Seats < 2 || c.Table.Seats > 10 {
		return fmt.Errorf("seats must be between 2 and 10, got %d", c.Table.Seats)
	}
	if c.Table.RemotePlayers > c.Table.Seats {
		return fmt.Errorf("remote_players (%d) exceeds seats (%d)", c.Table.RemotePlayers, c.Table.Seats)
	}
	if c.Table.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.Table.TimeoutSeconds)
	}
	return nil
}

// Addr returns the host:port the server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
