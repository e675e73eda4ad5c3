// Package chatclient implements the widget's conversation session: an
// in-memory ordered history plus the single-flight send state machine,
// decoupled from any rendering so it can be driven headless.
package chatclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/bunniesplumbing/chat-gateway/internal/knowledge"
)

// State is the session's send state.
type State int

const (
	// StateIdle means a send may be initiated.
	StateIdle State = iota
	// StateSending means a request is in flight; further sends are no-ops.
	StateSending
)

// Message mirrors one conversation turn as the gateway expects it.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

var (
	// ErrBusy signals a send attempted while another is in flight.
	ErrBusy = errors.New("chatclient: send already in progress")
	// ErrEmptyMessage signals a blank send attempt.
	ErrEmptyMessage = errors.New("chatclient: message is empty")
)

// Config configures a Session.
type Config struct {
	// Endpoint is the gateway's chat URL.
	Endpoint string
	// HTTPClient defaults to a 35s-timeout client, slightly above the
	// gateway's own upstream bound so the server answers first.
	HTTPClient *http.Client
	// Fallback overrides the client-owned failure text.
	Fallback string
	// OnStateChange and OnHistoryChange feed the render layer. Both are
	// invoked synchronously from Send's goroutine.
	OnStateChange   func(State)
	OnHistoryChange func([]Message)
}

// Session owns one browser tab's conversation.
type Session struct {
	endpoint   string
	httpClient *http.Client
	fallback   string
	onState    func(State)
	onHistory  func([]Message)

	mu      sync.Mutex
	state   State
	history []Message
}

// NewSession creates an idle session with empty history.
func NewSession(cfg Config) *Session {
	s := &Session{
		endpoint:   cfg.Endpoint,
		httpClient: cfg.HTTPClient,
		fallback:   cfg.Fallback,
		onState:    cfg.OnStateChange,
		onHistory:  cfg.OnHistoryChange,
	}
	if s.httpClient == nil {
		s.httpClient = &http.Client{Timeout: 35 * time.Second}
	}
	if s.fallback == "" {
		s.fallback = knowledge.ClientFallbackMessage
	}
	return s
}

type gatewayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Send posts one message to the gateway and returns the assistant reply
// (which may be a fallback). While a send is in flight, further calls
// return ErrBusy without touching state or history. The session always
// returns to idle when the request resolves, however it resolves.
func (s *Session) Send(ctx context.Context, text string) (string, error) {
	text = trimMessage(text)
	if text == "" {
		return "", ErrEmptyMessage
	}

	s.mu.Lock()
	if s.state == StateSending {
		s.mu.Unlock()
		return "", ErrBusy
	}
	s.state = StateSending
	// The outbound history excludes the turn being sent; the gateway
	// re-appends the new message after windowing.
	outbound := make([]Message, len(s.history))
	copy(outbound, s.history)
	s.history = append(s.history, Message{Role: "user", Content: text})
	s.mu.Unlock()

	s.notifyState(StateSending)
	s.notifyHistory()

	reply := s.post(ctx, text, outbound)

	s.mu.Lock()
	s.history = append(s.history, Message{Role: "assistant", Content: reply})
	s.state = StateIdle
	s.mu.Unlock()

	s.notifyHistory()
	s.notifyState(StateIdle)

	return reply, nil
}

// post performs the HTTP exchange; every failure path collapses into the
// client-owned fallback so the caller always has text to render.
func (s *Session) post(ctx context.Context, text string, outbound []Message) string {
	payload, err := json.Marshal(struct {
		Message string    `json:"message"`
		History []Message `json:"history"`
	}{Message: text, History: outbound})
	if err != nil {
		return s.fallback
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return s.fallback
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return s.fallback
	}
	defer resp.Body.Close()

	var decoded gatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return s.fallback
	}
	if decoded.Message == "" {
		return s.fallback
	}
	// The gateway's success=false messages are visitor-facing too; render
	// whatever text it chose.
	return decoded.Message
}

// State reports the current send state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// History returns a copy of the conversation so far, oldest first.
func (s *Session) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]Message, len(s.history))
	copy(copied, s.history)
	return copied
}

func (s *Session) notifyState(state State) {
	if s.onState != nil {
		s.onState(state)
	}
}

func (s *Session) notifyHistory() {
	if s.onHistory != nil {
		s.onHistory(s.History())
	}
}
