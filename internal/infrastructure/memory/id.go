package memory

import (
	"crypto/rand"
	"fmt"
	"time"
)

// newID returns an opaque identifier in the format <prefix>_XXXXXXXX.
func newID(prefix string) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%s_%08x", prefix, time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("%s_%08x", prefix, b)
}

// nextTimestamp returns the current time, nudged forward when the wall clock
// has not advanced past prev. Keeps update timestamps strictly increasing
// even for back-to-back mutations within clock resolution.
func nextTimestamp(prev time.Time) time.Time {
	now := time.Now().UTC()
	if !now.After(prev) {
		return prev.Add(time.Nanosecond)
	}
	return now
}
