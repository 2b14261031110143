// Package agent drives an OpenAI-compatible chat model that answers by calling the dice tools.
// The model decides which tool to call; the agent only executes the calls through a
// tools.Dispatcher and reports the results back until the model answers in plain text.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/primedice/internal/metrics"
	"github.com/KirkDiggler/primedice/internal/tools"
	"github.com/sashabaranov/go-openai"
)

// Agent runs the tool-calling loop
type Agent struct {
	client       OpenAIClient
	dispatcher   tools.Dispatcher
	model        string
	systemPrompt string
	maxSteps     int
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// New creates a new agent
func New(cfg *Config) (*Agent, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Client == nil {
		return nil, ErrNilClient
	}

	if cfg.Dispatcher == nil {
		return nil, ErrNilDispatcher
	}

	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	systemPrompt := cfg.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}

	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Agent{
		client:       cfg.Client,
		dispatcher:   cfg.Dispatcher,
		model:        cfg.Model,
		systemPrompt: systemPrompt,
		maxSteps:     maxSteps,
		metrics:      cfg.Metrics,
		logger:       logger,
	}, nil
}

// NewOpenAIClient builds a go-openai client, pointing it at baseURL when one is given
func NewOpenAIClient(apiKey, baseURL string) *openai.Client {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(clientConfig)
}

// Run sends the prompt to the model and executes tool calls until the model answers
func (a *Agent) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	output, err := a.run(ctx, input)
	a.metrics.RecordAgentRun(err)
	return output, err
}

func (a *Agent) run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	prompt := DefaultPrompt
	if input != nil && strings.TrimSpace(input.Prompt) != "" {
		prompt = input.Prompt
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: a.systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	}

	toolDefs := a.toolDefinitions()
	output := &RunOutput{Steps: []Step{}}

	for step := 0; step < a.maxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    a.model,
			Messages: messages,
			Tools:    toolDefs,
		})
		if err != nil {
			return nil, fmt.Errorf("chat completion failed: %w", err)
		}

		if len(resp.Choices) == 0 {
			return nil, ErrNoChoices
		}

		reply := resp.Choices[0].Message
		if len(reply.ToolCalls) == 0 {
			output.Answer = reply.Content
			a.logger.InfoContext(ctx, "agent answered", "steps", len(output.Steps))
			return output, nil
		}

		// The assistant message carrying the tool calls must precede their results
		messages = append(messages, reply)

		for _, call := range reply.ToolCalls {
			executed := a.execute(ctx, call)
			output.Steps = append(output.Steps, executed)

			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    executed.Observation,
				Name:       call.Function.Name,
				ToolCallID: call.ID,
			})
		}
	}

	return nil, ErrMaxSteps
}

// execute runs one tool call. Failures become the observation so the model can recover.
func (a *Agent) execute(ctx context.Context, call openai.ToolCall) Step {
	step := Step{
		Tool:      tools.Name(call.Function.Name),
		Arguments: call.Function.Arguments,
	}

	result, err := a.dispatcher.Dispatch(ctx, &tools.Call{
		Name:      step.Tool,
		Arguments: call.Function.Arguments,
	})
	if err != nil {
		a.logger.WarnContext(ctx, "tool call failed", "tool", step.Tool, "error", err)
		step.Err = err
		step.Observation = fmt.Sprintf("error: %v", err)
		return step
	}

	step.Observation = result.String()
	a.logger.DebugContext(ctx, "tool call", "tool", step.Tool, "observation", step.Observation)
	return step
}

func (a *Agent) toolDefinitions() []openai.Tool {
	defs := a.dispatcher.Definitions()
	out := make([]openai.Tool, len(defs))
	for i, def := range defs {
		out[i] = openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        string(def.Name),
				Description: def.Description,
				Parameters:  def.Parameters,
			},
		}
	}
	return out
}
