// Package domain defines the persistence models for users, friendships, and
// direct messages. These types are mapped with GORM and form the durable data
// layer of the social backend; presence is deliberately absent here because it
// is process-local state (see internal/presence).
package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// User represents a registered account. Usernames are stored lowercase and act
// as the primary key; accounts are never mutated or deleted.
//
// Fields:
//   - Username: normalized (trimmed, lowercased) unique identifier.
//   - Credential: the login secret, compared verbatim on authentication.
type User struct {
	Username   string `json:"username"   gorm:"type:varchar(64);primaryKey"`
	Credential string `json:"-"          gorm:"type:varchar(255);not null"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Friend is one directed half of a logical friendship. Every friendship is
// persisted as the pair (UserA, UserB) and (UserB, UserA); the composite
// unique index makes re-adding an existing friendship a no-op at the store
// level rather than an application-level check.
type Friend struct {
	ID    uint64 `json:"-"       gorm:"primaryKey;autoIncrement"`
	UserA string `json:"user_a"  gorm:"type:varchar(64);not null;index:idx_friend_owner;uniqueIndex:ux_friend_pair,priority:1"`
	UserB string `json:"user_b"  gorm:"type:varchar(64);not null;uniqueIndex:ux_friend_pair,priority:2"`
}

// TableName returns the database table name for Friend.
func (Friend) TableName() string { return "friends" }

// ChatMessage is an immutable direct message. The autoincrement ID doubles as
// the tie-breaker when two messages share a millisecond timestamp.
//
// Fields:
//   - Sender / Receiver: normalized usernames; the receiver is not validated
//     against the users table on send.
//   - Body: stored verbatim, no sanitization.
//   - Timestamp: server-assigned milliseconds since epoch.
type ChatMessage struct {
	ID        uint64 `json:"id"        gorm:"primaryKey;autoIncrement"`
	Sender    string `json:"sender"    gorm:"type:varchar(64);not null;index:idx_chat_pair,priority:1"`
	Receiver  string `json:"receiver"  gorm:"type:varchar(64);not null;index:idx_chat_pair,priority:2"`
	Body      string `json:"body"      gorm:"column:message;type:text;not null"`
	Timestamp int64  `json:"timestamp" gorm:"not null;index"`
}

// TableName returns the database table name for ChatMessage.
func (ChatMessage) TableName() string { return "chats" }

// FriendStatus annotates a friend with their presence at the moment the
// listing was produced. It is a read model, never persisted.
type FriendStatus struct {
	Username string `json:"username"`
	Online   bool   `json:"online"`
}

// usernameCaser lowercases with full Unicode case mapping, so lookups stay
// case-insensitive beyond ASCII.
var usernameCaser = cases.Lower(language.Und)

// NormalizeUsername trims surrounding whitespace and lowercases a username.
// Every lookup and insert goes through this, making storage and comparison
// case- and whitespace-insensitive.
func NormalizeUsername(name string) string {
	return usernameCaser.String(strings.TrimSpace(name))
}
