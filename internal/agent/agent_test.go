package agent

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/KirkDiggler/primedice/internal/dice"
	"github.com/KirkDiggler/primedice/internal/logging"
	"github.com/KirkDiggler/primedice/internal/metrics"
	"github.com/KirkDiggler/primedice/internal/primality"
	"github.com/KirkDiggler/primedice/internal/tools"
	toolMocks "github.com/KirkDiggler/primedice/internal/tools/mocks"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// scriptedClient replays canned responses and records requests
type scriptedClient struct {
	mu        sync.Mutex
	responses []openai.ChatCompletionResponse
	errs      []error
	calls     []openai.ChatCompletionRequest
}

func (c *scriptedClient) add(resp openai.ChatCompletionResponse, err error) {
	c.responses = append(c.responses, resp)
	c.errs = append(c.errs, err)
}

func (c *scriptedClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	index := len(c.calls)
	c.calls = append(c.calls, req)
	if index >= len(c.responses) {
		return openai.ChatCompletionResponse{}, nil
	}
	return c.responses[index], c.errs[index]
}

func toolCallResponse(id, name, arguments string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{
				Role: openai.ChatMessageRoleAssistant,
				ToolCalls: []openai.ToolCall{{
					ID:   id,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      name,
						Arguments: arguments,
					},
				}},
			},
		}},
	}
}

func answerResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: content,
			},
		}},
	}
}

// fixedSource always lands on the same index
type fixedSource int

func (f fixedSource) Intn(n int) int {
	return int(f) % n
}

type AgentTestSuite struct {
	suite.Suite
	client     *scriptedClient
	dispatcher tools.Dispatcher
	agent      *Agent
	ctx        context.Context
}

func (s *AgentTestSuite) SetupTest() {
	s.client = &scriptedClient{}
	s.ctx = context.Background()

	// The die always shows 3
	d, err := tools.New(&tools.Config{
		DiceRoller: dice.New(&dice.Config{Source: fixedSource(2)}),
		Logger:     logging.NewNop(),
	})
	s.Require().NoError(err)
	s.dispatcher = d

	a, err := New(&Config{
		Client:     s.client,
		Dispatcher: s.dispatcher,
		Model:      "test-model",
		Metrics:    metrics.New(),
		Logger:     logging.NewNop(),
	})
	s.Require().NoError(err)
	s.agent = a
}

func TestAgentTestSuite(t *testing.T) {
	suite.Run(t, new(AgentTestSuite))
}

func (s *AgentTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilClient)

	_, err = New(&Config{Client: s.client})
	s.ErrorIs(err, ErrNilDispatcher)

	_, err = New(&Config{Client: s.client, Dispatcher: s.dispatcher})
	s.ErrorIs(err, ErrMissingModel)
}

func (s *AgentTestSuite) TestRollsAndChecksPrime() {
	s.client.add(toolCallResponse("call-1", "roll_dice", "{}"), nil)
	s.client.add(toolCallResponse("call-2", "is_prime", `{"n": 3}`), nil)
	s.client.add(answerResponse("The dice shows 3 and it is prime."), nil)

	output, err := s.agent.Run(s.ctx, &RunInput{})
	s.Require().NoError(err)

	s.Equal("The dice shows 3 and it is prime.", output.Answer)
	s.Require().Len(output.Steps, 2)
	s.Equal(tools.NameRollDice, output.Steps[0].Tool)
	s.Equal("3", output.Steps[0].Observation)
	s.Equal(tools.NameIsPrime, output.Steps[1].Tool)
	s.Equal("true", output.Steps[1].Observation)

	s.Require().Len(s.client.calls, 3)

	first := s.client.calls[0]
	s.Equal("test-model", first.Model)
	s.Require().Len(first.Messages, 2)
	s.Equal(openai.ChatMessageRoleSystem, first.Messages[0].Role)
	s.Equal(DefaultPrompt, first.Messages[1].Content)
	s.Require().Len(first.Tools, 2)
	s.Equal("roll_dice", first.Tools[0].Function.Name)
	s.Equal("is_prime", first.Tools[1].Function.Name)

	// system, user, assistant tool call, tool result
	second := s.client.calls[1]
	s.Require().Len(second.Messages, 4)
	s.Equal(openai.ChatMessageRoleTool, second.Messages[3].Role)
	s.Equal("call-1", second.Messages[3].ToolCallID)
	s.Equal("3", second.Messages[3].Content)

	third := s.client.calls[2]
	s.Require().Len(third.Messages, 6)
	s.Equal("true", third.Messages[5].Content)
}

func (s *AgentTestSuite) TestCustomPrompt() {
	s.client.add(answerResponse("Hello"), nil)

	output, err := s.agent.Run(s.ctx, &RunInput{Prompt: "Is 17 prime?"})
	s.Require().NoError(err)
	s.Equal("Hello", output.Answer)
	s.Empty(output.Steps)
	s.Equal("Is 17 prime?", s.client.calls[0].Messages[1].Content)
}

func (s *AgentTestSuite) TestToolErrorIsReportedToModel() {
	s.client.add(toolCallResponse("call-1", "is_prime", `"seventeen"`), nil)
	s.client.add(toolCallResponse("call-2", "flip_coin", "{}"), nil)
	s.client.add(answerResponse("I could not check that."), nil)

	output, err := s.agent.Run(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(output.Steps, 2)

	s.ErrorIs(output.Steps[0].Err, primality.ErrNotInteger)
	s.Contains(output.Steps[0].Observation, "error:")
	s.ErrorIs(output.Steps[1].Err, tools.ErrUnknownTool)

	second := s.client.calls[1]
	s.Contains(second.Messages[len(second.Messages)-1].Content, "error:")
}

func (s *AgentTestSuite) TestMaxSteps() {
	for i := 0; i < DefaultMaxSteps; i++ {
		s.client.add(toolCallResponse("call", "roll_dice", "{}"), nil)
	}

	_, err := s.agent.Run(s.ctx, nil)
	s.ErrorIs(err, ErrMaxSteps)
	s.Len(s.client.calls, DefaultMaxSteps)
}

func (s *AgentTestSuite) TestNoChoices() {
	s.client.add(openai.ChatCompletionResponse{}, nil)

	_, err := s.agent.Run(s.ctx, nil)
	s.ErrorIs(err, ErrNoChoices)
}

func (s *AgentTestSuite) TestClientError() {
	s.client.add(openai.ChatCompletionResponse{}, errors.New("rate limited"))

	_, err := s.agent.Run(s.ctx, nil)
	s.Require().Error(err)
	s.Contains(err.Error(), "rate limited")
}

func (s *AgentTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.agent.Run(ctx, nil)
	s.ErrorIs(err, context.Canceled)
	s.Empty(s.client.calls)
}

func (s *AgentTestSuite) TestDispatchesThroughDispatcher() {
	ctrl := gomock.NewController(s.T())
	mockDispatcher := toolMocks.NewMockDispatcher(ctrl)

	mockDispatcher.EXPECT().Definitions().Return([]tools.Definition{{Name: tools.NameRollDice, Description: "roll"}})
	mockDispatcher.EXPECT().
		Dispatch(gomock.Any(), &tools.Call{Name: tools.NameRollDice, Arguments: "{}"}).
		Return(&tools.Result{Name: tools.NameRollDice, RollDice: &tools.RollDiceOutput{Value: 6}}, nil)

	a, err := New(&Config{
		Client:     s.client,
		Dispatcher: mockDispatcher,
		Model:      "test-model",
		MaxSteps:   2,
		Logger:     logging.NewNop(),
	})
	s.Require().NoError(err)

	s.client.add(toolCallResponse("call-1", "roll_dice", "{}"), nil)
	s.client.add(answerResponse("You rolled a 6, which is not prime."), nil)

	output, err := a.Run(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal("6", output.Steps[0].Observation)
}
