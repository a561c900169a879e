package profile

import "context"

// Repository persists per-user profile documents.
type Repository interface {
	// Set merge-writes the profile document for uid. Fields not listed in
	// the write are left untouched; the lastUpdated field is resolved to
	// the database server's clock at commit.
	Set(ctx context.Context, uid, displayName string) error
}
