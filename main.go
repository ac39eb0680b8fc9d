// tictactoe serves a configurable N×N tic-tac-toe table over HTTP and WebSocket.
//
// Usage:
//
//	tictactoe [serve]        - Start the HTTP and WebSocket servers
//	tictactoe scores         - Print the stored scores
//	tictactoe scores reset   - Reset the stored scores to zero
//
// Global flags:
//
//	--config <path>  - Path to config file (default: ./config.yml)
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-board/internal"
	"github.com/rocketscienceinc/tictactoe-board/internal/config"
)

var flagConfigPath string

// main - is the entry point of the application. It parses the command line and runs the selected command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Configurable tic-tac-toe server",
	Long: `Serves one shared N×N tic-tac-toe table with a configurable win length.
Scores are kept in the configured key-value store.

Without a subcommand the servers are started.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP and WebSocket servers",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config file (default: ./config.yml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

// initialize config.
func initConfig() *config.Config {
	if flagConfigPath != "" {
		return config.MustLoad(flagConfigPath)
	}

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
