// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis agent session keys.
const SessionCachePrefix = "agent:session:"

// SessionCacheTTL is the time-to-live for cached agent sessions.
const SessionCacheTTL = 30 * time.Minute
