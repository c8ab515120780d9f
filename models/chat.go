// File: models/chat.go
package models

// UnstructuredMessage is one free-text chat message from or to the user.
type UnstructuredMessage struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// ChatMessage wraps an unstructured message in the channel envelope.
type ChatMessage struct {
	Type         string              `json:"type"`
	Unstructured UnstructuredMessage `json:"unstructured"`
}

// ChatRequest is the inbound payload of the chat proxy endpoint.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// ChatResponse is the outbound payload of the chat proxy endpoint.
type ChatResponse struct {
	Messages []ChatMessage `json:"messages"`
}
