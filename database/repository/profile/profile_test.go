package profile

import (
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
)

func TestDocPath(t *testing.T) {
	assert.Equal(t, "artifacts/default-app-id/users/u-7/profiles/userProfile", DocPath("u-7"))
}

func TestDocData(t *testing.T) {
	data := docData("u-7", "Bob")

	assert.Equal(t, "u-7", data["userId"])
	assert.Equal(t, "Bob", data["displayName"])
	// lastUpdated must be the server-timestamp sentinel, never a literal time.
	assert.Equal(t, firestore.ServerTimestamp, data["lastUpdated"])
}
