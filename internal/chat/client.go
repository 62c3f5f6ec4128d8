// Package chat proxies free-text messages to an external conversational
// agent over HTTP. Replies are opaque text; nothing here reads or writes
// game state, and a relay failure surfaces only as a fallback line in the
// chat transcript.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// FallbackReply is shown in place of an assistant reply when the relay or
// the backing agent is unavailable.
const FallbackReply = "Meow... something went wrong! 😿"

// Role identifies who authored a chat message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of the chat transcript
type Message struct {
	ID      uuid.UUID `json:"id"`
	Role    Role      `json:"role"`
	Content string    `json:"content"`
	Time    time.Time `json:"timestamp"`
}

// NewMessage builds a transcript entry stamped with a fresh id
func NewMessage(role Role, content string) Message {
	return Message{
		ID:      uuid.New(),
		Role:    role,
		Content: content,
		Time:    time.Now().UTC(),
	}
}

// Greeting is the assistant's opening line when a chat session starts
func Greeting(catName string) string {
	return fmt.Sprintf("Meow! I'm %s, your cosmic AI companion. Ask me anything! ✨", catName)
}

// Client talks to the chat relay endpoint
type Client struct {
	url string
	hc  *http.Client
}

// NewClient builds a relay client for the given endpoint URL
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		hc:  &http.Client{Timeout: timeout},
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// Send relays a message and returns the agent's reply text
func (c *Client) Send(ctx context.Context, message string) (string, error) {
	body, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("send chat request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("agent unavailable: status %d", res.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("agent error: %s", parsed.Error)
	}
	return parsed.Text, nil
}
