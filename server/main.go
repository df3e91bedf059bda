package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

//
// ===== bootstrap =====
//

type config struct {
	Port        string
	DatabaseURL string
	AutoMigrate bool
	Color       bool
	Debug       bool
	Timeout     int // seconds, HTTP read/write/handler
}

var cfg config

func loadConfig() config {
	return config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		AutoMigrate: asBool(os.Getenv("AUTO_MIGRATE")),
		Color:       (os.Getenv("NO_COLOR") == "") && (strings.TrimSpace(os.Getenv("USE_COLOR")) != "0"),
		Debug:       asBool(os.Getenv("DEBUG")),
		Timeout:     atoiDef(os.Getenv("HTTP_TIMEOUT"), 15),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
func atoiDef(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
func asBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

var rootCmd = &cobra.Command{
	Use:           "matchstate",
	Short:         "Parse and inspect ACPC match state lines",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !cfg.Color {
			pterm.DisableColor()
		}
		if cfg.Debug {
			pterm.EnableDebugMessages()
		}
	},
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	_ = godotenv.Load()
	cfg = loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		pterm.Error.Println(err)
		stop()
		os.Exit(1)
	}
}

// dsnFlag prefers --db over DATABASE_URL.
func dsnFlag(cmd *cobra.Command) (string, error) {
	dsn, err := cmd.Flags().GetString("db")
	if err != nil {
		return "", err
	}
	if dsn == "" {
		dsn = cfg.DatabaseURL
	}
	return dsn, nil
}
