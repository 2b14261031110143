package tools

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_dispatcher.go github.com/KirkDiggler/primedice/internal/tools Dispatcher

// Dispatcher runs the named tools
type Dispatcher interface {
	// Definitions lists the tools in a stable order
	Definitions() []Definition

	// Dispatch runs the tool named by the call
	Dispatch(ctx context.Context, call *Call) (*Result, error)

	// RollDice rolls a six-sided die
	RollDice(ctx context.Context) (*RollDiceOutput, error)

	// IsPrime parses the input and checks it for primality
	IsPrime(ctx context.Context, input *IsPrimeInput) (*IsPrimeOutput, error)
}
