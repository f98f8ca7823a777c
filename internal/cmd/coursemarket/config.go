package coursemarket

import (
	"flag"
	"fmt"
	"strings"
	"time"

	entrypoint "github.com/omkumar23112003/course-selling-app/internal/platform/cmd"
)

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config holds coursemarket command configuration.
type Config struct {
	DBPath  string        `env:"COURSEMARKET_DB_PATH" envDefault:"data/coursemarket.db"`
	Storage string        `env:"COURSEMARKET_STORAGE" envDefault:"sqlite"`
	Locale  string        `env:"COURSEMARKET_LOCALE" envDefault:"en-US"`
	Timeout time.Duration `env:"COURSEMARKET_TIMEOUT" envDefault:"30s"`

	// Command is the subcommand name and Args its remaining arguments.
	Command string
	Args    []string
}

// ParseConfig loads .env and environment defaults, then parses global flags
// followed by the subcommand.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg, ".env"); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the sqlite database (default: COURSEMARKET_DB_PATH or data/coursemarket.db)")
	fs.StringVar(&cfg.Storage, "storage", cfg.Storage, "storage backend (sqlite|memory)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for error messages")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	cfg.Storage = strings.ToLower(strings.TrimSpace(cfg.Storage))
	if cfg.Storage != StorageSQLite && cfg.Storage != StorageMemory {
		return Config{}, fmt.Errorf("unknown storage %q (valid: sqlite, memory)", cfg.Storage)
	}
	if cfg.Timeout <= 0 {
		return Config{}, fmt.Errorf("timeout must be positive")
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return Config{}, fmt.Errorf("command is required (%s)", strings.Join(commandNames(), ", "))
	}
	cfg.Command = rest[0]
	cfg.Args = rest[1:]
	return cfg, nil
}
