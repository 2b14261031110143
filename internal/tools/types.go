package tools

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/primedice/internal/dice"
	"github.com/KirkDiggler/primedice/internal/metrics"
)

// Name identifies a tool. The set is closed: NameRollDice and NameIsPrime.
type Name string

const (
	// NameRollDice rolls a six-sided die
	NameRollDice Name = "roll_dice"

	// NameIsPrime reports whether a number is prime
	NameIsPrime Name = "is_prime"
)

// Valid reports whether n names a known tool
func (n Name) Valid() bool {
	return n == NameRollDice || n == NameIsPrime
}

// Definition describes a tool to a model
type Definition struct {
	Name        Name
	Description string

	// Parameters is a JSON schema for the call arguments
	Parameters json.RawMessage
}

// Config holds dependencies for the dispatcher
type Config struct {
	DiceRoller dice.Roller

	// Optional
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// Call is one tool invocation. Arguments is free text or a JSON object, as a model sends it.
type Call struct {
	Name      Name
	Arguments string
}

// Result is the outcome of a Call
type Result struct {
	Name Name

	// Exactly one of these is set, matching Name
	RollDice *RollDiceOutput
	IsPrime  *IsPrimeOutput
}

// String renders the result the way it is reported back to a model
func (r *Result) String() string {
	switch {
	case r == nil:
		return ""
	case r.RollDice != nil:
		return fmt.Sprintf("%d", r.RollDice.Value)
	case r.IsPrime != nil:
		return fmt.Sprintf("%t", r.IsPrime.IsPrime)
	default:
		return ""
	}
}

// RollDiceOutput contains the face that came up
type RollDiceOutput struct {
	Value int
}

// IsPrimeInput carries the number to check as text
type IsPrimeInput struct {
	Text string
}

// IsPrimeOutput contains the parsed number and the decision
type IsPrimeOutput struct {
	N       int64
	IsPrime bool
}
