package agent

// AgentError is a custom error type for agent errors
type AgentError string

// Error implements the error interface
func (e AgentError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMaxSteps      AgentError = "agent exceeded maximum steps without an answer"
	ErrNoChoices     AgentError = "no choices in response"
	ErrNilConfig     AgentError = "config cannot be nil"
	ErrNilClient     AgentError = "openai client cannot be nil"
	ErrNilDispatcher AgentError = "tool dispatcher cannot be nil"
	ErrMissingModel  AgentError = "model cannot be empty"
)
