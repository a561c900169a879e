package config

// FirestoreAppID is the tenant segment used in Firestore document paths
// (artifacts/{appId}/users/...). It must match the value embedded in the
// client bundle; it is a build-time constant, never derived from the caller.
const FirestoreAppID = "default-app-id"
