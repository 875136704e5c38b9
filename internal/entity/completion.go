package entity

// CompletionMessage is a single turn sent to the completion service
type CompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CompletionRequest struct {
	Model     string              `json:"model"`
	MaxTokens int                 `json:"max_tokens"`
	Messages  []CompletionMessage `json:"messages"`
}

// CompletionContentBlock is one element of the response content array.
// Only blocks with Type "text" carry Text.
type CompletionContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type CompletionResponse struct {
	ID         string                   `json:"id"`
	Model      string                   `json:"model"`
	StopReason string                   `json:"stop_reason"`
	Content    []CompletionContentBlock `json:"content"`
}
