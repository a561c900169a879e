package profile

import (
	"context"

	"studiobook/models"
)

// AuthAdmin updates user records in the identity provider. Implementations
// translate provider failures into ProfileError codes.
type AuthAdmin interface {
	UpdateDisplayName(ctx context.Context, uid, displayName string) error
}

// ProfileService updates a user's display name in the identity provider and
// mirrors it into the user's profile document.
type ProfileService interface {
	// UpdateProfile trims displayName, writes it to the identity provider
	// and then merge-writes the profile document. Returns the profile as
	// written.
	UpdateProfile(ctx context.Context, uid, displayName string) (*models.UserProfile, error)
}
