package models

// ProfileUpdateRequest is the payload accepted by the update-profile endpoint.
// DisplayName is a pointer so a missing field can be told apart from an
// empty string during validation.
type ProfileUpdateRequest struct {
	DisplayName *string `json:"displayName"`
}

// UserProfile mirrors the per-user profile document kept in Firestore.
type UserProfile struct {
	UserID      string `json:"userId" firestore:"userId"`
	DisplayName string `json:"displayName" firestore:"displayName"`
}
