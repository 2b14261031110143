package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/primedice/internal/dice"
	"github.com/KirkDiggler/primedice/internal/metrics"
	"github.com/KirkDiggler/primedice/internal/primality"
)

var definitions = []Definition{
	{
		Name:        NameRollDice,
		Description: "Roll a six-sided dice and return the result.",
		Parameters:  json.RawMessage(`{"type":"object","properties":{}}`),
	},
	{
		Name:        NameIsPrime,
		Description: "Return true if a number is prime.",
		Parameters:  json.RawMessage(`{"type":"object","properties":{"n":{"type":"integer","description":"The number to check"}},"required":["n"]}`),
	},
}

// dispatcher implements the Dispatcher interface
type dispatcher struct {
	diceRoller dice.Roller
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// New creates a new tool dispatcher
func New(cfg *Config) (*dispatcher, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilRoller
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &dispatcher{
		diceRoller: cfg.DiceRoller,
		metrics:    cfg.Metrics,
		logger:     logger,
	}, nil
}

// Definitions lists the tools in a stable order
func (d *dispatcher) Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Dispatch runs the tool named by the call
func (d *dispatcher) Dispatch(ctx context.Context, call *Call) (*Result, error) {
	if call == nil {
		return nil, ErrNilCall
	}

	result, err := d.dispatch(ctx, call)
	d.metrics.RecordToolCall(string(call.Name), err)
	if err != nil {
		d.logger.DebugContext(ctx, "tool call failed", "tool", call.Name, "arguments", call.Arguments, "error", err)
		return nil, err
	}

	d.logger.DebugContext(ctx, "tool call", "tool", call.Name, "arguments", call.Arguments, "result", result.String())
	return result, nil
}

func (d *dispatcher) dispatch(ctx context.Context, call *Call) (*Result, error) {
	switch call.Name {
	case NameRollDice:
		// Arguments are ignored
		output, err := d.RollDice(ctx)
		if err != nil {
			return nil, err
		}
		return &Result{Name: call.Name, RollDice: output}, nil

	case NameIsPrime:
		text, err := primeArgument(call.Arguments)
		if err != nil {
			return nil, err
		}

		output, err := d.IsPrime(ctx, &IsPrimeInput{Text: text})
		if err != nil {
			return nil, err
		}
		return &Result{Name: call.Name, IsPrime: output}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, call.Name)
	}
}

// RollDice rolls a six-sided die
func (d *dispatcher) RollDice(ctx context.Context) (*RollDiceOutput, error) {
	value := d.diceRoller.Roll()
	d.metrics.RecordRoll(value)

	return &RollDiceOutput{
		Value: value,
	}, nil
}

// IsPrime parses the input and checks it for primality
func (d *dispatcher) IsPrime(ctx context.Context, input *IsPrimeInput) (*IsPrimeOutput, error) {
	if input == nil {
		return nil, ErrInvalidArguments
	}

	n, err := primality.Parse(input.Text)
	if err != nil {
		return nil, err
	}

	isPrime := primality.IsPrime(n)
	d.metrics.RecordPrimeCheck(isPrime)

	return &IsPrimeOutput{
		N:       n,
		IsPrime: isPrime,
	}, nil
}

// primeArgument accepts a bare number ("3", "\"3\"") or an object with an n field, given as a
// number or a string.
func primeArgument(arguments string) (string, error) {
	trimmed := strings.TrimSpace(arguments)
	if !strings.HasPrefix(trimmed, "{") {
		return strings.Trim(trimmed, `"'`), nil
	}

	var args struct {
		N json.RawMessage `json:"n"`
	}
	if err := json.Unmarshal([]byte(trimmed), &args); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}

	if len(args.N) == 0 {
		return "", fmt.Errorf("%w: missing n", ErrInvalidArguments)
	}

	var text string
	if err := json.Unmarshal(args.N, &text); err == nil {
		return text, nil
	}

	// A JSON number, keep its literal text so Parse sees exactly what was sent
	return string(args.N), nil
}
