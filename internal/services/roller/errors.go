package roller

// RollerError is a custom error type for roller service errors
type RollerError string

// Error implements the error interface
func (e RollerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoHistory        RollerError = "roll history is not enabled"
	ErrInvalidInput     RollerError = "input cannot be nil"
	ErrMissingChannel   RollerError = "channel ID cannot be empty"
	ErrNilConfig        RollerError = "config cannot be nil"
	ErrNilDiceRoller    RollerError = "dice roller cannot be nil"
	ErrNilClock         RollerError = "clock cannot be nil"
	ErrNilUUIDGenerator RollerError = "UUID generator cannot be nil"
)
