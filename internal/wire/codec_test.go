package wire

import (
	"errors"
	"testing"

	"github.com/minecode21-boop/social-applinxx2cs/internal/domain"
)

func TestParseCredentials(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    Credentials
		wantErr bool
	}{
		{"basic", "alice:pw1", Credentials{"alice", "pw1"}, false},
		{"credential trimmed", "alice: pw1 ", Credentials{"alice", "pw1"}, false},
		// Naive split: everything after the second colon is dropped.
		{"colon in credential truncates", "alice:pw:extra", Credentials{"alice", "pw"}, false},
		{"missing credential", "alice", Credentials{}, true},
		{"empty", "", Credentials{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCredentials(tc.payload)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrMalformed) {
				t.Fatalf("err = %v, want ErrMalformed", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParseFriendAdd(t *testing.T) {
	got, err := ParseFriendAdd("alice:bob")
	if err != nil {
		t.Fatalf("ParseFriendAdd: %v", err)
	}
	if got.User != "alice" || got.Friend != "bob" {
		t.Fatalf("got %+v", got)
	}
	if _, err := ParseFriendAdd("alice"); !errors.Is(err, ErrMalformed) {
		t.Fatalf("single field: err = %v, want ErrMalformed", err)
	}
}

func TestParseFriendList(t *testing.T) {
	got, err := ParseFriendList("alice")
	if err != nil || got.User != "alice" {
		t.Fatalf("got %+v err %v", got, err)
	}
	// Extra fields are ignored; only the requester matters.
	got, err = ParseFriendList("alice:ignored")
	if err != nil || got.User != "alice" {
		t.Fatalf("got %+v err %v", got, err)
	}
	if _, err := ParseFriendList("   "); !errors.Is(err, ErrMalformed) {
		t.Fatalf("blank: err = %v, want ErrMalformed", err)
	}
}

func TestParseChatSend_BodyKeepsColons(t *testing.T) {
	got, err := ParseChatSend("alice:bob:see you at 10:30: ok?")
	if err != nil {
		t.Fatalf("ParseChatSend: %v", err)
	}
	if got.Sender != "alice" || got.Receiver != "bob" {
		t.Fatalf("got %+v", got)
	}
	if got.Body != "see you at 10:30: ok?" {
		t.Fatalf("body = %q", got.Body)
	}

	if _, err := ParseChatSend("alice:bob"); !errors.Is(err, ErrMalformed) {
		t.Fatalf("two fields: err = %v, want ErrMalformed", err)
	}
}

func TestParseChatGet(t *testing.T) {
	got, err := ParseChatGet("alice:bob")
	if err != nil || got.Me != "alice" || got.Friend != "bob" {
		t.Fatalf("got %+v err %v", got, err)
	}
	if _, err := ParseChatGet("alice"); !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func TestEncodeFriendList(t *testing.T) {
	if got := EncodeFriendList(nil); got != "" {
		t.Fatalf("empty list = %q, want empty string", got)
	}
	got := EncodeFriendList([]domain.FriendStatus{
		{Username: "bob", Online: true},
		{Username: "carol", Online: false},
	})
	if got != "bob:1,carol:0," {
		t.Fatalf("got %q, want %q", got, "bob:1,carol:0,")
	}
}

func TestEncodeThread(t *testing.T) {
	if got := EncodeThread(nil); got != "" {
		t.Fatalf("empty thread = %q, want empty string", got)
	}
	got := EncodeThread([]domain.ChatMessage{
		{Sender: "alice", Body: "hello"},
		{Sender: "bob", Body: "hi: all good"},
	})
	if got != "alice:hello|bob:hi: all good|" {
		t.Fatalf("got %q", got)
	}
}
