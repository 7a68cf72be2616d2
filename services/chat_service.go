package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

var ErrChatDisabled = errors.New("chat_not_configured")

// ChatOptions mirror the completion parameters the companion sends on every
// request.
type ChatOptions struct {
	Model            string  `json:"model"`
	Temperature      float64 `json:"temperature"`
	MaxTokens        int     `json:"max_tokens"`
	TopP             float64 `json:"top_p"`
	FrequencyPenalty float64 `json:"frequency_penalty"`
	PresencePenalty  float64 `json:"presence_penalty"`
}

// DefaultChatOptions keeps responses short and snappy for a side widget.
func DefaultChatOptions(model string) ChatOptions {
	return ChatOptions{
		Model:            model,
		Temperature:      0.5,
		MaxTokens:        800,
		TopP:             0.8,
		FrequencyPenalty: 0.2,
		PresencePenalty:  0.1,
	}
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	ChatOptions
	Messages []ChatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ChatService is the decorative chat companion. Each session owns its own
// growing transcript for the process lifetime; sessions share nothing with
// the reservation core.
type ChatService struct {
	client       *resty.Client
	apiKey       string
	options      ChatOptions
	systemPrompt string

	mu       sync.Mutex
	sessions map[string][]ChatMessage
}

// NewChatService builds a companion client against an OpenAI-style
// chat-completions endpoint. An empty apiKey disables the feature.
func NewChatService(baseURL, apiKey, model, systemPrompt string) *ChatService {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(15 * time.Second).
		SetHeader("Content-Type", "application/json")
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}
	return &ChatService{
		client:       client,
		apiKey:       apiKey,
		options:      DefaultChatOptions(model),
		systemPrompt: systemPrompt,
		sessions:     make(map[string][]ChatMessage),
	}
}

func (s *ChatService) Enabled() bool {
	return s.apiKey != ""
}

// history returns a copy of the session transcript, seeding a new session
// with the system prompt.
func (s *ChatService) history(sessionID string) []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs, ok := s.sessions[sessionID]
	if !ok && s.systemPrompt != "" {
		msgs = []ChatMessage{{Role: "system", Content: s.systemPrompt}}
		s.sessions[sessionID] = msgs
	}
	out := make([]ChatMessage, len(msgs))
	copy(out, msgs)
	return out
}

func (s *ChatService) append(sessionID string, msgs ...ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], msgs...)
}

// Send appends the user message to the session transcript, calls the remote
// endpoint with the full history and returns the assistant reply.
func (s *ChatService) Send(ctx context.Context, sessionID, prompt string) (string, error) {
	if !s.Enabled() {
		return "", ErrChatDisabled
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", fmt.Errorf("validation: empty prompt")
	}

	messages := append(s.history(sessionID), ChatMessage{Role: "user", Content: prompt})

	var out chatResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(chatRequest{ChatOptions: s.options, Messages: messages}).
		SetResult(&out).
		SetError(&out).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	if resp.IsError() {
		if out.Error != nil && out.Error.Message != "" {
			return "", fmt.Errorf("chat endpoint error: %s", out.Error.Message)
		}
		return "", fmt.Errorf("chat endpoint error: HTTP %d", resp.StatusCode())
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("chat endpoint returned no choices")
	}

	reply := strings.TrimSpace(out.Choices[0].Message.Content)
	s.append(sessionID,
		ChatMessage{Role: "user", Content: prompt},
		ChatMessage{Role: "assistant", Content: reply},
	)
	return reply, nil
}

// History exposes the transcript for the UI to render.
func (s *ChatService) History(sessionID string) []ChatMessage {
	return s.history(sessionID)
}

// Reset drops a session transcript.
func (s *ChatService) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
