// Package util provides small helpers shared across packages.
package util

import (
	"bytes"
	"strings"
	"sync"
)

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(256)
		return sb
	},
}

func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}

// SplitAny calls yield for each part of s separated by any of the seps bytes.
// Parts are sub-slices of s. Iteration stops early when yield returns false.
func SplitAny[T ~string | ~[]byte](s T, seps string, yield func(T) bool) {
	start := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(seps, s[i]) < 0 {
			continue
		}
		if !yield(s[start:i]) {
			return
		}
		start = i + 1
	}
	yield(s[start:])
}

// IndexByte returns the index of the first c in s, or -1.
func IndexByte[T ~string | ~[]byte](s T, c byte) int {
	switch in := any(s).(type) {
	case string:
		return strings.IndexByte(in, c)
	case []byte:
		return bytes.IndexByte(in, c)
	default:
		return strings.IndexByte(string(s), c)
	}
}
