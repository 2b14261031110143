package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/primedice/internal/dice"
	"github.com/KirkDiggler/primedice/internal/primality"
	"github.com/KirkDiggler/primedice/internal/services/roller"
	"github.com/KirkDiggler/primedice/internal/tools"
)

// service implements the Service interface
type service struct {
	// Picks among message variants
	roller dice.Roller
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var r dice.Roller
	if config != nil && config.DiceRoller != nil {
		r = config.DiceRoller
	} else {
		r = dice.New(&dice.Config{})
	}

	return &service{
		roller: r,
	}, nil
}

// pick returns one of the options at random
func (s *service) pick(options []string) string {
	return options[s.roller.RollSides(len(options))-1]
}

// GetRollResultMessage returns a message describing a roll and whether it came up prime
func (s *service) GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.Tone
	if tone == "" {
		tone = ToneFunny
	}

	outcome := fmt.Sprintf("The dice shows %d. It's not a prime number.", input.RollValue)
	if input.IsPrime {
		outcome = fmt.Sprintf("The dice shows %d. It's a prime number!", input.RollValue)
	}

	name := input.PlayerName
	if name == "" {
		name = "Someone"
	}

	var titles, comments []string
	switch tone {
	case ToneNeutral:
		titles = []string{"Roll Result"}
		if input.IsPrime {
			comments = []string{fmt.Sprintf("%s rolled a prime.", name)}
		} else {
			comments = []string{fmt.Sprintf("%s rolled a composite or a one.", name)}
		}

	case ToneSarcastic:
		titles = []string{"Wow. A Number.", "Stop the Presses", "Math Happened"}
		if input.IsPrime {
			comments = []string{
				fmt.Sprintf("Congratulations %s, you found a number only divisible by itself and one. Euclid is shaking.", name),
				fmt.Sprintf("%s rolled a prime. Try not to let it go to your head.", name),
				"A prime. On a six-sided die. Half the faces are prime, so, you know, calm down.",
			}
		} else {
			comments = []string{
				fmt.Sprintf("%s rolled a perfectly ordinary number. Riveting.", name),
				"Not prime. The dice clearly know who they're dealing with.",
				fmt.Sprintf("Divisible. Just like %s's attention span.", name),
			}
		}

	case ToneEncouraging:
		titles = []string{"Nice Roll!", "Keep Going!", "Great Effort!"}
		if input.IsPrime {
			comments = []string{
				fmt.Sprintf("Way to go %s, that's a prime!", name),
				"Prime time! You're on a roll.",
				"Indivisible, just like your spirit!",
			}
		} else {
			comments = []string{
				fmt.Sprintf("Not prime this time, %s, but the next one could be!", name),
				"Every roll is a chance. Give it another go!",
				"Composites need love too. Roll again!",
			}
		}

	default:
		titles = []string{"The Dice Have Spoken!", "Roll Call!", "Clickety Clack!", "Dice Report"}
		if input.IsPrime {
			comments = []string{
				fmt.Sprintf("%s rolled a prime! The mathematicians rejoice!", name),
				fmt.Sprintf("Prime! %s is indivisible today.", name),
				"Only two divisors and zero regrets!",
				fmt.Sprintf("Look at %s, rolling primes like it's nothing.", name),
			}
		} else {
			comments = []string{
				fmt.Sprintf("%s rolled a number with too many friends to be prime.", name),
				"Not prime. The dice are feeling divisible today.",
				fmt.Sprintf("Sorry %s, that number is spoken for by smaller factors.", name),
				"Composite! Or a one, which is even worse at being prime.",
			}
		}
	}

	return &GetRollResultMessageOutput{
		Title:   s.pick(titles),
		Outcome: outcome,
		Comment: s.pick(comments),
		Tone:    tone,
	}, nil
}

// GetPrimeCheckMessage returns a message for a standalone primality check
func (s *service) GetPrimeCheckMessage(ctx context.Context, input *GetPrimeCheckMessageInput) (*GetPrimeCheckMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.IsPrime {
		return &GetPrimeCheckMessageOutput{
			Message: fmt.Sprintf("%d is a prime number.", input.N),
		}, nil
	}

	return &GetPrimeCheckMessageOutput{
		Message: fmt.Sprintf("%d is not a prime number.", input.N),
	}, nil
}

// GetStatsMessage returns a summary of a channel's rolls
func (s *service) GetStatsMessage(ctx context.Context, input *GetStatsMessageInput) (*GetStatsMessageOutput, error) {
	if input == nil || input.Stats == nil {
		return nil, errors.New("input and stats cannot be nil")
	}

	stats := input.Stats
	if stats.Total == 0 {
		return &GetStatsMessageOutput{
			Title:   "Roll Stats",
			Lines:   []string{},
			Summary: "No rolls yet. Be the first!",
		}, nil
	}

	lines := make([]string, 0, dice.DefaultSides)
	for face := 1; face <= dice.DefaultSides; face++ {
		lines = append(lines, fmt.Sprintf("%d: %d (%.1f%%)", face, stats.Faces[face], stats.Frequency(face)*100))
	}

	return &GetStatsMessageOutput{
		Title:   "Roll Stats",
		Lines:   lines,
		Summary: fmt.Sprintf("%d rolls, %d prime (%.1f%%)", stats.Total, stats.Primes, float64(stats.Primes)/float64(stats.Total)*100),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var errorType ErrorType
	var messages []string

	var parseErr *primality.ParseError
	switch {
	case errors.As(input.Err, &parseErr):
		errorType = ErrorTypeNotInteger
		messages = []string{
			fmt.Sprintf("%q isn't a whole number. Try something like 17.", parseErr.Input),
			fmt.Sprintf("I can only check whole numbers, and %q isn't one.", parseErr.Input),
		}
	case errors.Is(input.Err, tools.ErrUnknownTool):
		errorType = ErrorTypeUnknownTool
		messages = []string{
			"I only know how to roll dice and check primes.",
		}
	case errors.Is(input.Err, roller.ErrNoHistory):
		errorType = ErrorTypeNoHistory
		messages = []string{
			"Roll history isn't switched on here.",
			"I'm not keeping score right now, history is disabled.",
		}
	default:
		errorType = ErrorTypeInternal
		messages = []string{
			"Something went wrong! Try again later.",
			"Oops! The dice got confused. Try again.",
			"Error! The dice gods are displeased. Try again later.",
		}
	}

	return &GetErrorMessageOutput{
		ErrorType: errorType,
		Message:   s.pick(messages),
	}, nil
}
