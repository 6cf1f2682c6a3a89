package llm

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Standard chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatRequest represents a request to the chat completions endpoint.
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

// ChatResponse represents a response from the chat completions endpoint.
type ChatResponse struct {
	Choices []Choice `json:"choices"`
}

// Choice represents a single completion choice.
type Choice struct {
	Message Message `json:"message"`
}
