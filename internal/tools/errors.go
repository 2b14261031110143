package tools

// ToolError is a custom error type for tool dispatch errors
type ToolError string

// Error implements the error interface
func (e ToolError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUnknownTool      ToolError = "unknown tool"
	ErrInvalidArguments ToolError = "invalid tool arguments"
	ErrNilCall          ToolError = "tool call cannot be nil"
	ErrNilConfig        ToolError = "config cannot be nil"
	ErrNilRoller        ToolError = "dice roller cannot be nil"
)
