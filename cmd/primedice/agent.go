package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/primedice/internal/agent"
	"github.com/KirkDiggler/primedice/internal/tools"
	"github.com/spf13/cobra"
)

var agentCmd = &cobra.Command{
	Use:   "agent [prompt]",
	Short: "Ask an OpenAI-compatible model, which answers by calling the dice tools",
	Long: `Sends the prompt (default "` + agent.DefaultPrompt + `") to the configured model along with
the roll_dice and is_prime tools, executes the tool calls it makes and prints its answer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if model, _ := cmd.Flags().GetString("model"); model != "" {
			a.cfg.OpenAI.Model = model
		}
		if cmd.Flags().Changed("max-steps") {
			a.cfg.OpenAI.MaxSteps, _ = cmd.Flags().GetInt("max-steps")
		}

		if a.cfg.OpenAI.APIKey == "" && a.cfg.OpenAI.BaseURL == "" {
			return errors.New("OPENAI_API_KEY is required unless OPENAI_BASE_URL points at a local endpoint")
		}

		dispatcher, err := tools.New(&tools.Config{
			DiceRoller: a.diceRoller,
			Metrics:    a.metrics,
			Logger:     a.logger,
		})
		if err != nil {
			return fmt.Errorf("failed to create tool dispatcher: %w", err)
		}

		runner, err := agent.New(&agent.Config{
			Client:     agent.NewOpenAIClient(a.cfg.OpenAI.APIKey, a.cfg.OpenAI.BaseURL),
			Dispatcher: dispatcher,
			Model:      a.cfg.OpenAI.Model,
			MaxSteps:   a.cfg.OpenAI.MaxSteps,
			Metrics:    a.metrics,
			Logger:     a.logger,
		})
		if err != nil {
			return fmt.Errorf("failed to create agent: %w", err)
		}

		output, err := runner.Run(cmd.Context(), &agent.RunInput{Prompt: strings.Join(args, " ")})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if verbose {
			for _, step := range output.Steps {
				fmt.Fprintf(out, "-> %s(%s) = %s\n", step.Tool, step.Arguments, step.Observation)
			}
		}
		fmt.Fprintln(out, output.Answer)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(agentCmd)
	agentCmd.Flags().String("model", "", "Model name (overrides OPENAI_MODEL)")
	agentCmd.Flags().Int("max-steps", agent.DefaultMaxSteps, "Maximum model calls per run (overrides AGENT_MAX_STEPS)")
	agentCmd.Flags().BoolP("verbose", "v", false, "Print each tool call before the answer")
}
