package main

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/primedice/internal/handlers/discord"
	"github.com/spf13/cobra"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Discord bot with the /dice command",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if a.cfg.Discord.Token == "" {
			return errors.New("DISCORD_TOKEN environment variable is required")
		}

		bot, err := discord.New(&discord.Config{
			Token:            a.cfg.Discord.Token,
			ApplicationID:    a.cfg.Discord.ApplicationID,
			GuildID:          a.cfg.Discord.GuildID,
			RollerService:    a.rollerService,
			MessagingService: a.messagingService,
			Logger:           a.logger,
		})
		if err != nil {
			return fmt.Errorf("failed to create Discord bot: %w", err)
		}

		if err := bot.Start(); err != nil {
			return fmt.Errorf("failed to start Discord bot: %w", err)
		}

		// Wait for interrupt signal to gracefully shutdown
		<-cmd.Context().Done()

		if err := bot.Stop(); err != nil {
			return fmt.Errorf("error stopping bot: %w", err)
		}

		a.logger.Info("bot has been shut down")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(botCmd)
}
