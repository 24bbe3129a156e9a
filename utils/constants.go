// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis capture-session keys.
const SessionCachePrefix = "masajeRegistrado:"

// DefaultSessionTTL bounds how long a browser session keeps its "already recorded" flag.
const DefaultSessionTTL = 12 * time.Hour

// SessionCookieName identifies the browser session on the capture page.
const SessionCookieName = "kym_session"
