package profile

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/errorutils"
)

// FirebaseAuthAdmin adapts the Firebase Auth admin client to the AuthAdmin
// interface, mapping SDK failures onto profile error codes.
type FirebaseAuthAdmin struct {
	Client *auth.Client
}

func NewFirebaseAuthAdmin(client *auth.Client) *FirebaseAuthAdmin {
	return &FirebaseAuthAdmin{Client: client}
}

func (a *FirebaseAuthAdmin) UpdateDisplayName(ctx context.Context, uid, displayName string) error {
	update := (&auth.UserToUpdate{}).DisplayName(displayName)
	if _, err := a.Client.UpdateUser(ctx, uid, update); err != nil {
		switch {
		case auth.IsUserNotFound(err):
			return &ProfileError{Code: CodeNotFound, Message: "user " + uid + " not found", Err: err}
		case errorutils.IsInvalidArgument(err):
			return &ProfileError{Code: CodeInvalidArgument, Message: "identity provider rejected the display name", Err: err}
		default:
			return &ProfileError{Code: CodeInternal, Message: "failed to update identity provider", Err: err}
		}
	}
	return nil
}
