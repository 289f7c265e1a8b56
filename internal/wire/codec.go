// Package wire implements the plain-text request/response encoding spoken by
// the API: colon-separated request fields and delimiter-joined response
// bodies. Parsing happens entirely at this boundary, so services receive
// already-validated structured arguments and never see raw payloads.
//
// The format is kept byte-for-byte stable for existing clients, including
// its quirks: register/login payloads are split naively on every colon, so a
// credential containing a colon is truncated at the
// first one; friend lists end with a trailing comma and chat threads with a
// trailing pipe.
package wire

import (
	"errors"
	"strings"

	"github.com/minecode21-boop/social-applinxx2cs/internal/domain"
)

// ErrMalformed is returned when a payload does not carry the expected number
// of fields.
var ErrMalformed = errors.New("malformed payload")

// Credentials is the decoded register/login payload "username:credential".
type Credentials struct {
	Username   string
	Credential string
}

// FriendAdd is the decoded addfriend payload "user:friend".
type FriendAdd struct {
	User   string
	Friend string
}

// FriendList is the decoded getfriends payload "user".
type FriendList struct {
	User string
}

// ChatSend is the decoded send payload "sender:receiver:message". Body is the
// verbatim remainder after the second colon and may itself contain colons.
type ChatSend struct {
	Sender   string
	Receiver string
	Body     string
}

// ChatGet is the decoded getchat payload "me:friend".
type ChatGet struct {
	Me     string
	Friend string
}

// ParseCredentials splits a register/login payload. At least two fields are
// required; extra colons truncate the credential (preserved protocol quirk).
func ParseCredentials(payload string) (Credentials, error) {
	parts := strings.Split(payload, ":")
	if len(parts) < 2 {
		return Credentials{}, ErrMalformed
	}
	return Credentials{
		Username:   parts[0],
		Credential: strings.TrimSpace(parts[1]),
	}, nil
}

// ParseFriendAdd splits an addfriend payload into requester and friend.
func ParseFriendAdd(payload string) (FriendAdd, error) {
	parts := strings.Split(payload, ":")
	if len(parts) < 2 {
		return FriendAdd{}, ErrMalformed
	}
	return FriendAdd{User: parts[0], Friend: parts[1]}, nil
}

// ParseFriendList decodes a getfriends payload. The first field identifies
// the requester; it must be non-blank.
func ParseFriendList(payload string) (FriendList, error) {
	user := strings.Split(payload, ":")[0]
	if strings.TrimSpace(user) == "" {
		return FriendList{}, ErrMalformed
	}
	return FriendList{User: user}, nil
}

// ParseChatSend splits a send payload on the first two colons only, keeping
// the message body verbatim.
func ParseChatSend(payload string) (ChatSend, error) {
	parts := strings.SplitN(payload, ":", 3)
	if len(parts) < 3 {
		return ChatSend{}, ErrMalformed
	}
	return ChatSend{Sender: parts[0], Receiver: parts[1], Body: parts[2]}, nil
}

// ParseChatGet splits a getchat payload into requester and counterpart.
func ParseChatGet(payload string) (ChatGet, error) {
	parts := strings.Split(payload, ":")
	if len(parts) < 2 {
		return ChatGet{}, ErrMalformed
	}
	return ChatGet{Me: parts[0], Friend: parts[1]}, nil
}

// EncodeFriendList renders "name:0|1" pairs, each followed by a comma. The
// trailing comma is part of the format.
func EncodeFriendList(friends []domain.FriendStatus) string {
	var b strings.Builder
	for _, f := range friends {
		b.WriteString(f.Username)
		b.WriteByte(':')
		if f.Online {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
		b.WriteByte(',')
	}
	return b.String()
}

// EncodeThread renders "sender:message" pairs in the given order, each
// followed by a pipe. The trailing pipe is part of the format; bodies are not
// escaped, so a pipe inside a body is ambiguous to consumers (inherited
// limitation).
func EncodeThread(msgs []domain.ChatMessage) string {
	var b strings.Builder
	for _, m := range msgs {
		b.WriteString(m.Sender)
		b.WriteByte(':')
		b.WriteString(m.Body)
		b.WriteByte('|')
	}
	return b.String()
}
