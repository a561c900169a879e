package profile

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"studiobook/config"
)

// FirestoreProfileRepo is the Firestore-backed profile repository.
type FirestoreProfileRepo struct {
	Client *firestore.Client
}

func NewFirestoreProfileRepo(client *firestore.Client) *FirestoreProfileRepo {
	return &FirestoreProfileRepo{Client: client}
}

// DocPath returns the profile document path for uid. The appId segment is
// fixed at build time and must match the client bundle.
func DocPath(uid string) string {
	return fmt.Sprintf("artifacts/%s/users/%s/profiles/userProfile", config.FirestoreAppID, uid)
}

// docData builds the merge-set payload for the profile document.
func docData(uid, displayName string) map[string]interface{} {
	return map[string]interface{}{
		"userId":      uid,
		"displayName": displayName,
		"lastUpdated": firestore.ServerTimestamp,
	}
}

func (r *FirestoreProfileRepo) Set(ctx context.Context, uid, displayName string) error {
	_, err := r.Client.Doc(DocPath(uid)).Set(ctx, docData(uid, displayName), firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to write profile document: %w", err)
	}
	return nil
}
