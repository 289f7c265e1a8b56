// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Friend
// relation.
//
// A logical friendship is two directed rows, (a,b) and (b,a). Both inserts
// use ON CONFLICT DO NOTHING against the (user_a, user_b) unique index, so
// re-adding an existing friendship silently succeeds without duplicating rows
// and without an application-level existence check.
package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/minecode21-boop/social-applinxx2cs/internal/domain"
)

// AddFriendPair inserts both directed rows for the friendship between user
// and friend inside one transaction, keeping the symmetry invariant: if (a,b)
// commits, (b,a) commits with it. Duplicate pairs are ignored at the store
// level, making the operation idempotent.
func AddFriendPair(ctx context.Context, db *gorm.DB, user, friend string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows := []domain.Friend{
			{UserA: user, UserB: friend},
			{UserA: friend, UserB: user},
		}
		for i := range rows {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_a"}, {Name: "user_b"}},
				DoNothing: true,
			}).Create(&rows[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// ListFriendNames returns the usernames adjacent to user via directed edges
// user -> x, in insertion order. An empty slice (not an error) means the user
// has no friends.
func ListFriendNames(ctx context.Context, db *gorm.DB, user string) ([]string, error) {
	var names []string
	err := db.WithContext(ctx).
		Model(&domain.Friend{}).
		Where("user_a = ?", user).
		Order("id asc").
		Pluck("user_b", &names).Error
	return names, err
}

// CountFriendEdges returns the number of directed rows originating at user.
func CountFriendEdges(ctx context.Context, db *gorm.DB, user string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Friend{}).
		Where("user_a = ?", user).
		Count(&n).Error
	return n, err
}
