package domain

import (
	"context"
	"time"
)

// OrganizerRepository answers whether a user may manage a community's slots.
type OrganizerRepository interface {
	IsOrganizer(ctx context.Context, communityID, userID string) (bool, error)
}

// TokenVerifier verifies a bearer token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// TokenIssuer signs bearer tokens for a user id.
type TokenIssuer interface {
	Issue(userID string, expiry time.Duration) (string, error)
}
