package domain

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	lastSuffix   int64
	lastSuffixMu sync.Mutex
)

// NextKeySuffix returns the current Unix milliseconds, bumped past every value
// already issued by this process.
func NextKeySuffix() int64 {
	lastSuffixMu.Lock()
	defer lastSuffixMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= lastSuffix {
		now = lastSuffix + 1
	}
	lastSuffix = now
	return now
}

// NewFieldKey lower-cases label, replaces every rune outside [a-z0-9] with an
// underscore and appends the suffix.
func NewFieldKey(label string, suffix int64) Key {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	b.WriteByte('_')
	b.WriteString(strconv.FormatInt(suffix, 10))
	return Key(b.String())
}
