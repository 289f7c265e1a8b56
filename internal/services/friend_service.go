// Package services – FriendService
//
// This file implements the FriendService, which maintains the symmetric
// friend graph and composes it with the presence tracker. Adding a friendship
// writes both directed rows with conflict-do-nothing semantics, so repeated
// adds are idempotent by construction. Listing annotates each neighbor with
// their online flag evaluated at call time.
//
// Any friend operation counts as activity for the requester, so the tracker
// is touched on entry, before validation.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/minecode21-boop/social-applinxx2cs/internal/domain"
	"github.com/minecode21-boop/social-applinxx2cs/internal/presence"
)

// FriendRepo defines the repository contract required by FriendService.
type FriendRepo interface {
	// AddFriendPair inserts both directed rows, ignoring duplicates.
	AddFriendPair(ctx context.Context, db *gorm.DB, user, friend string) error

	// ListFriendNames returns usernames adjacent to user.
	ListFriendNames(ctx context.Context, db *gorm.DB, user string) ([]string, error)

	// UserExists reports whether a username is registered.
	UserExists(ctx context.Context, db *gorm.DB, username string) (bool, error)
}

// FriendService provides mutual-add and annotated listing over the friend
// graph.
type FriendService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the friend repository used by this service.
	Repo FriendRepo
	// Presence supplies the online flag and records requester activity.
	Presence *presence.Tracker
}

// Add creates the friendship between user and friend. Self-friendship is
// rejected with ErrSelfFriend regardless of registration state; an unknown
// friend yields ErrFriendNotFound. Re-adding an existing friendship silently
// succeeds.
func (s *FriendService) Add(ctx context.Context, user, friend string) error {
	user = domain.NormalizeUsername(user)
	friend = domain.NormalizeUsername(friend)
	s.Presence.Touch(user)

	if user == friend {
		return ErrSelfFriend
	}
	exists, err := s.Repo.UserExists(ctx, s.DB, friend)
	if err != nil {
		return err
	}
	if !exists {
		return ErrFriendNotFound
	}
	return s.Repo.AddFriendPair(ctx, s.DB, user, friend)
}

// List returns the user's friends, each annotated with whether they acted
// within the presence window as of now. A user with no friends gets an empty
// slice, not an error.
func (s *FriendService) List(ctx context.Context, user string) ([]domain.FriendStatus, error) {
	user = domain.NormalizeUsername(user)
	s.Presence.Touch(user)

	names, err := s.Repo.ListFriendNames(ctx, s.DB, user)
	if err != nil {
		return nil, err
	}
	out := make([]domain.FriendStatus, 0, len(names))
	for _, name := range names {
		out = append(out, domain.FriendStatus{
			Username: name,
			Online:   s.Presence.Online(name),
		})
	}
	return out, nil
}
