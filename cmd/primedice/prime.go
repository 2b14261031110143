package main

import (
	"fmt"

	"github.com/KirkDiggler/primedice/internal/services/messaging"
	"github.com/KirkDiggler/primedice/internal/services/roller"
	"github.com/spf13/cobra"
)

var primeCmd = &cobra.Command{
	Use:   "prime [--] <n> [n...]",
	Short: "Check whether numbers are prime",
	Long: `Checks each argument for primality. Numbers below 2 are never prime.
Negative numbers look like flags, so pass them after --.`,
	Example: `  primedice prime 17 91
  primedice prime -- -7 0 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		for _, arg := range args {
			output, err := a.rollerService.CheckPrime(ctx, &roller.CheckPrimeInput{Text: arg})
			if err != nil {
				return err
			}

			msgOutput, err := a.messagingService.GetPrimeCheckMessage(ctx, &messaging.GetPrimeCheckMessageInput{
				N:       output.N,
				IsPrime: output.IsPrime,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(out, msgOutput.Message)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(primeCmd)
}
