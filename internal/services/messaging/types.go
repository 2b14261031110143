package messaging

import (
	"github.com/KirkDiggler/primedice/internal/dice"
	"github.com/KirkDiggler/primedice/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"
)

// ErrorType categorises errors for GetErrorMessage
type ErrorType string

const (
	ErrorTypeNotInteger  ErrorType = "not_integer"
	ErrorTypeUnknownTool ErrorType = "unknown_tool"
	ErrorTypeNoHistory   ErrorType = "no_history"
	ErrorTypeInternal    ErrorType = "internal"
)

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// DiceRoller picks among message variants, optional
	DiceRoller dice.Roller
}

// GetRollResultMessageInput contains the input for GetRollResultMessage
type GetRollResultMessageInput struct {
	PlayerName string
	RollValue  int
	IsPrime    bool

	// Tone defaults to ToneFunny
	Tone MessageTone
}

// GetRollResultMessageOutput contains the output for GetRollResultMessage
type GetRollResultMessageOutput struct {
	Title string

	// Outcome states the face and the primality verdict plainly
	Outcome string

	// Comment is a tone-flavoured remark
	Comment string

	Tone MessageTone
}

// GetPrimeCheckMessageInput contains the input for GetPrimeCheckMessage
type GetPrimeCheckMessageInput struct {
	N       int64
	IsPrime bool
}

// GetPrimeCheckMessageOutput contains the output for GetPrimeCheckMessage
type GetPrimeCheckMessageOutput struct {
	Message string
}

// GetStatsMessageInput contains the input for GetStatsMessage
type GetStatsMessageInput struct {
	Stats *models.Stats
}

// GetStatsMessageOutput contains the output for GetStatsMessage
type GetStatsMessageOutput struct {
	Title string

	// Lines holds one line per face, 1 to 6
	Lines []string

	Summary string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is classified into an ErrorType
	Err error
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	ErrorType ErrorType
	Message   string
}
