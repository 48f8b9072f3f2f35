package common

import "time"

const (
	// MaxRequestBody limits JSON request bodies.
	MaxRequestBody = 1 << 20
	// DefaultPageLimit is used when a list request omits limit.
	DefaultPageLimit = 10
	// MaxPageLimit caps limit on every paginated endpoint.
	MaxPageLimit = 100
	// RequestTimeout bounds store and provider calls made by one request.
	RequestTimeout = 5 * time.Second
)
