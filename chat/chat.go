// Package chat drives the assistant conversation: an Idle/Sending state
// machine that serializes turns, allows at most one in-flight request, and
// degrades network failures into transcript entries instead of errors.
package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"pulse/api"
	"pulse/core"
)

// State is the session's request state.
type State int

const (
	// Idle means no request is in flight.
	Idle State = iota
	// Sending means a message has been dispatched and its reply is pending.
	Sending
)

// Greeting seeds every new session as the first assistant message.
const Greeting = "Hello! I'm your AI assistant. Ask me questions about the dashboard data."

// Session holds the conversation transcript and its state.
type Session struct {
	client *api.Client

	mu       sync.Mutex
	state    State
	messages []core.ChatMessage
}

// New creates a session seeded with the assistant greeting.
func New(client *api.Client) *Session {
	s := &Session{client: client}
	s.messages = append(s.messages, newMessage(core.RoleAssistant, Greeting))
	return s
}

// Send appends the user's message, dispatches it, and appends the reply.
// Empty or whitespace-only text is a no-op, as is a call while another send
// is in flight; both report false without touching the transcript. Network
// failures are absorbed into an assistant transcript entry — Send never
// surfaces an error.
func (s *Session) Send(ctx context.Context, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	s.mu.Lock()
	if s.state == Sending {
		s.mu.Unlock()
		return false
	}
	s.state = Sending
	// Optimistic echo: the user's message lands before the network call,
	// so it always precedes the reply in the transcript.
	s.messages = append(s.messages, newMessage(core.RoleUser, text))
	s.mu.Unlock()

	reply, err := s.client.SendMessage(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.messages = append(s.messages, newMessage(core.RoleAssistant,
			fmt.Sprintf("Sorry, I couldn't get a response: %s", err)))
	} else {
		s.messages = append(s.messages, newMessage(core.RoleAssistant, reply.Response))
	}
	s.state = Idle
	return true
}

// Clear wipes the server-side history and resets the transcript to the
// seeded greeting. Unlike Send, the endpoint error propagates.
func (s *Session) Clear(ctx context.Context) error {
	if _, err := s.client.ClearChat(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = []core.ChatMessage{newMessage(core.RoleAssistant, Greeting)}
	return nil
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []core.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// State returns the current request state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func newMessage(role core.Role, content string) core.ChatMessage {
	return core.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}
