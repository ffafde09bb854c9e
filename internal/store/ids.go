package store

import (
	"strconv"
	"sync"
	"time"
)

// idSource hands out unique, monotonically nondecreasing identifiers
// based on the current time in milliseconds. Two requests landing in the
// same millisecond receive consecutive values, so IDs never repeat
// within one process.
type idSource struct {
	mu   sync.Mutex
	last int64
}

// Next returns the next identifier as a base-10 string.
func (s *idSource) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id

	return strconv.FormatInt(id, 10)
}
