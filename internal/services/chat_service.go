// Package services – ChatService
//
// This file implements the ChatService, which appends to and reads from the
// durable message log. Send is deliberately permissive: the receiver is not
// required to exist or to be a friend of the sender (see DESIGN.md). Message
// bodies are stored verbatim.
package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/minecode21-boop/social-applinxx2cs/internal/domain"
	"github.com/minecode21-boop/social-applinxx2cs/internal/presence"
	"github.com/minecode21-boop/social-applinxx2cs/internal/repo"
)

// ChatService provides message append and conversation retrieval.
type ChatService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Presence records sender/requester activity.
	Presence *presence.Tracker

	// Now supplies the server-assigned timestamp; defaults to time.Now when
	// nil. Injectable for deterministic tests.
	Now func() time.Time
}

// Send appends a message from sender to receiver with a server-assigned
// millisecond timestamp and returns the stored message. The sender's presence
// is refreshed after a successful append.
func (s *ChatService) Send(ctx context.Context, sender, receiver, body string) (*domain.ChatMessage, error) {
	sender = domain.NormalizeUsername(sender)
	receiver = domain.NormalizeUsername(receiver)

	m, err := repo.AppendMessage(ctx, s.DB, sender, receiver, body, s.now().UnixMilli())
	if err != nil {
		return nil, err
	}
	s.Presence.Touch(sender)
	return m, nil
}

// Conversation returns the full thread between me and friend, both directions
// merged in chronological order. Only the requester's presence is refreshed.
func (s *ChatService) Conversation(ctx context.Context, me, friend string) ([]domain.ChatMessage, error) {
	me = domain.NormalizeUsername(me)
	friend = domain.NormalizeUsername(friend)
	s.Presence.Touch(me)

	return repo.ListConversation(ctx, s.DB, me, friend)
}

func (s *ChatService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
