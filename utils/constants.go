// File: utils/constants.go
package utils

import "time"

// AvailabilityCachePrefix is the prefix for cached availability responses.
const AvailabilityCachePrefix = "avail:"

// AvailabilityCacheTTL is the time-to-live for cached availability responses.
// Kept short: a stale entry only risks offering a slot the atomic reservation
// will reject anyway.
const AvailabilityCacheTTL = 30 * time.Second
