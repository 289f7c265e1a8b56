// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the append-only
// ChatMessage log.
//
// Messages are never updated or deleted. Retrieval merges both directions of
// a conversation into a single thread ordered by timestamp, with the
// autoincrement id breaking millisecond ties in insertion order.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/minecode21-boop/social-applinxx2cs/internal/domain"
)

// AppendMessage inserts a new chat message with the given server-assigned
// millisecond timestamp and returns the persisted row, including the
// generated id.
func AppendMessage(ctx context.Context, db *gorm.DB, sender, receiver, body string, ts int64) (*domain.ChatMessage, error) {
	m := &domain.ChatMessage{
		Sender:    sender,
		Receiver:  receiver,
		Body:      body,
		Timestamp: ts,
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// ListConversation returns every message between a and b, in either
// direction, ordered by ascending timestamp, then id. An empty slice means the two have
// never exchanged messages.
func ListConversation(ctx context.Context, db *gorm.DB, a, b string) ([]domain.ChatMessage, error) {
	var out []domain.ChatMessage
	err := db.WithContext(ctx).
		Where("(sender = ? AND receiver = ?) OR (sender = ? AND receiver = ?)", a, b, b, a).
		Order("timestamp asc, id asc").
		Find(&out).Error
	return out, err
}
