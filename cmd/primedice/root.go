package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "primedice",
	Short: "Roll a six-sided dice and find out if it's prime",
	Long: `primedice rolls a fair six-sided dice and checks numbers for primality.
It can answer from the command line, through an OpenAI-compatible agent that calls the
dice tools, over HTTP with a one-button page, or as a Discord bot.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("env-file", ".env", "Dotenv file to load before reading the environment")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().Int64("seed", 0, "Seed the dice for reproducible rolls (overrides DICE_SEED)")
	rootCmd.PersistentFlags().Bool("no-history", false, "Do not connect to Redis for roll history")
}
