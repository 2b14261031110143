package agent

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/primedice/internal/metrics"
	"github.com/KirkDiggler/primedice/internal/tools"
	"github.com/sashabaranov/go-openai"
)

const (
	// DefaultPrompt is the demo request
	DefaultPrompt = "Roll a dice and tell me if it's prime."

	// DefaultSystemPrompt tells the model what it has to work with
	DefaultSystemPrompt = "You are a dice assistant. Use the roll_dice tool to roll a six-sided die and the is_prime tool to check numbers. Never guess a roll or a primality result, always call the tool. Answer briefly."

	// DefaultMaxSteps bounds the number of model calls in one run
	DefaultMaxSteps = 5
)

// OpenAIClient interface for testability
type OpenAIClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Config holds configuration for the agent
type Config struct {
	Client     OpenAIClient
	Dispatcher tools.Dispatcher

	// Model name sent with every request
	Model string

	// Optional
	SystemPrompt string
	MaxSteps     int
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
}

// RunInput contains the user's request
type RunInput struct {
	// Prompt defaults to DefaultPrompt
	Prompt string
}

// Step records one tool call made during a run
type Step struct {
	Tool      tools.Name
	Arguments string

	// Observation is what was reported back to the model
	Observation string

	// Err is set when the tool failed, the failure is still reported to the model
	Err error
}

// RunOutput contains the model's final answer and the tool calls that led to it
type RunOutput struct {
	Answer string
	Steps  []Step
}
