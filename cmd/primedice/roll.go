package main

import (
	"fmt"

	"github.com/KirkDiggler/primedice/internal/models"
	"github.com/KirkDiggler/primedice/internal/services/messaging"
	"github.com/KirkDiggler/primedice/internal/services/roller"
	"github.com/spf13/cobra"
)

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll the dice and check whether the result is prime",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		tone, _ := cmd.Flags().GetString("tone")
		name, _ := cmd.Flags().GetString("name")

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		for n := 0; n < count; n++ {
			rollOutput, err := a.rollerService.RollAndCheck(ctx, &roller.RollAndCheckInput{
				ChannelID:  models.ChannelCLI,
				PlayerID:   models.ChannelCLI,
				PlayerName: name,
			})
			if err != nil {
				return err
			}

			msgOutput, err := a.messagingService.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
				PlayerName: name,
				RollValue:  rollOutput.Roll.Value,
				IsPrime:    rollOutput.Roll.IsPrime,
				Tone:       messaging.MessageTone(tone),
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(out, msgOutput.Outcome)
			if tone != string(messaging.ToneNeutral) {
				fmt.Fprintf(out, "  %s\n", msgOutput.Comment)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(rollCmd)
	rollCmd.Flags().IntP("count", "c", 1, "Number of rolls")
	rollCmd.Flags().String("tone", string(messaging.ToneNeutral), "Message tone: neutral, funny, sarcastic, encouraging")
	rollCmd.Flags().String("name", "You", "Name to roll as")
}
