// Social API HTTP handlers.
//
// This file exposes the plain-text endpoints of the backend:
//
//	POST /api/register    "username:credential"
//	POST /api/login       "username:credential"
//	POST /api/addfriend   "user:friend"
//	POST /api/getfriends  "user"
//	POST /api/send        "sender:receiver:message"
//	POST /api/getchat     "me:friend"
//
// Handlers are transport-thin: they decode the colon-separated payload via
// the wire package, call into application services, and translate results
// into plain-text responses with the protocol's status codes.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minecode21-boop/social-applinxx2cs/internal/domain"
	"github.com/minecode21-boop/social-applinxx2cs/internal/wire"
)

//
// Service contracts (context-aware)
//

// AccountService defines registration and authentication operations consumed
// by the HTTP layer. Implementations must be safe for concurrent use.
type AccountService interface {
	// Register creates an account, or fails with services.ErrUserExists.
	Register(ctx context.Context, username, credential string) error
	// Login verifies credentials and refreshes the user's presence.
	Login(ctx context.Context, username, credential string) error
}

// FriendService defines friend-graph operations consumed by the HTTP layer.
type FriendService interface {
	// Add creates a mutual friendship; idempotent on repeats.
	Add(ctx context.Context, user, friend string) error
	// List returns the user's friends annotated with presence.
	List(ctx context.Context, user string) ([]domain.FriendStatus, error)
}

// ChatService defines direct-message operations consumed by the HTTP layer.
type ChatService interface {
	// Send appends a message with a server-assigned timestamp.
	Send(ctx context.Context, sender, receiver, body string) (*domain.ChatMessage, error)
	// Conversation returns the merged two-way thread in chronological order.
	Conversation(ctx context.Context, me, friend string) ([]domain.ChatMessage, error)
}

// Handlers groups the HTTP endpoints for accounts, friendships, and chat.
type Handlers struct {
	accountSvc AccountService
	friendSvc  FriendService
	chatSvc    ChatService
}

// New constructs a Handlers instance bound to the given services.
func New(accountSvc AccountService, friendSvc FriendService, chatSvc ChatService) *Handlers {
	return &Handlers{accountSvc: accountSvc, friendSvc: friendSvc, chatSvc: chatSvc}
}

// payload reads the raw request body as text. A read failure (e.g. the body
// size limiter tripping) yields an empty payload, which the parsers reject.
func payload(c *gin.Context) string {
	raw, err := c.GetRawData()
	if err != nil {
		return ""
	}
	return string(raw)
}

// Register handles POST /api/register. Responds 200 "OK", 400 on a malformed
// payload, or 409 when the username is taken.
func (h *Handlers) Register(c *gin.Context) {
	creds, err := wire.ParseCredentials(payload(c))
	if err != nil {
		reply(c, http.StatusBadRequest, "Error: Format is user:pass")
		return
	}
	if err := h.accountSvc.Register(c.Request.Context(), creds.Username, creds.Credential); err != nil {
		failErr(c, err)
		return
	}
	reply(c, http.StatusOK, "OK")
}

// Login handles POST /api/login. Responds 200 "OK" or 401 on a credential
// mismatch; a successful login marks the user active.
func (h *Handlers) Login(c *gin.Context) {
	creds, err := wire.ParseCredentials(payload(c))
	if err != nil {
		reply(c, http.StatusBadRequest, "Error: Format is user:pass")
		return
	}
	if err := h.accountSvc.Login(c.Request.Context(), creds.Username, creds.Credential); err != nil {
		failErr(c, err)
		return
	}
	reply(c, http.StatusOK, "OK")
}

// AddFriend handles POST /api/addfriend. Responds 200 "Friend Added!" (also
// for repeats), 400 on self-add, or 404 when the friend is not registered.
func (h *Handlers) AddFriend(c *gin.Context) {
	req, err := wire.ParseFriendAdd(payload(c))
	if err != nil {
		reply(c, http.StatusBadRequest, "Error: Format is user:friend")
		return
	}
	if err := h.friendSvc.Add(c.Request.Context(), req.User, req.Friend); err != nil {
		failErr(c, err)
		return
	}
	reply(c, http.StatusOK, "Friend Added!")
}

// GetFriends handles POST /api/getfriends. Responds 200 with comma-separated
// "name:0|1" pairs; an empty body means no friends.
func (h *Handlers) GetFriends(c *gin.Context) {
	req, err := wire.ParseFriendList(payload(c))
	if err != nil {
		reply(c, http.StatusBadRequest, "Error: Missing username")
		return
	}
	friends, err := h.friendSvc.List(c.Request.Context(), req.User)
	if err != nil {
		failErr(c, err)
		return
	}
	reply(c, http.StatusOK, wire.EncodeFriendList(friends))
}

// Send handles POST /api/send. Responds 200 "Sent". The receiver is not
// validated; see DESIGN.md.
func (h *Handlers) Send(c *gin.Context) {
	req, err := wire.ParseChatSend(payload(c))
	if err != nil {
		reply(c, http.StatusBadRequest, "Error: Format is sender:receiver:message")
		return
	}
	if _, err := h.chatSvc.Send(c.Request.Context(), req.Sender, req.Receiver, req.Body); err != nil {
		failErr(c, err)
		return
	}
	reply(c, http.StatusOK, "Sent")
}

// GetChat handles POST /api/getchat. Responds 200 with pipe-separated
// "sender:message" pairs in chronological order.
func (h *Handlers) GetChat(c *gin.Context) {
	req, err := wire.ParseChatGet(payload(c))
	if err != nil {
		reply(c, http.StatusBadRequest, "Error: Format is me:friend")
		return
	}
	msgs, err := h.chatSvc.Conversation(c.Request.Context(), req.Me, req.Friend)
	if err != nil {
		failErr(c, err)
		return
	}
	reply(c, http.StatusOK, wire.EncodeThread(msgs))
}
