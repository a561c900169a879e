// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries. It is
// kept well below the one-hour lifetime of a Firebase ID token so revoked
// tokens age out of the cache quickly.
const AuthCacheTTL = 10 * time.Minute
