package grammar

import (
	"fmt"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlparts/internal/errorutil"
)

// Span is a half-open byte range [Start, End) of the parsed input.
type Span struct {
	Start, End int
}

func (s Span) String() string { return fmt.Sprintf("[%d:%d)", s.Start, s.End) }

// Slice returns the part of src covered by the span.
func Slice[T ~string | ~[]byte](src T, s Span) T { return src[s.Start:s.End] }

// Spans holds the spans of all [URLPattern] groups.
// A group that didn't participate in the match is absent.
type Spans struct {
	spans [NumGroups]Span
	set   [NumGroups]bool
}

// Get returns the span of the group g and whether the group participated in the match.
func (ss *Spans) Get(g Group) (Span, bool) {
	if g < GroupScheme || g > GroupFragment {
		return Span{}, false
	}
	return ss.spans[g-1], ss.set[g-1]
}

func newInvalidURLErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidURL, args...) //errtrace:skip
}

// ParseURL matches the whole input s against [URLPattern].
// It returns an error wrapping [ErrInvalidURL] if s is not a URL.
func ParseURL[T ~string | ~[]byte](s T) (Spans, error) {
	var loc []int
	switch in := any(s).(type) {
	case string:
		loc = Matcher().FindStringSubmatchIndex(in)
	case []byte:
		loc = Matcher().FindSubmatchIndex(in)
	default:
		loc = Matcher().FindStringSubmatchIndex(string(s))
	}
	if loc == nil {
		return Spans{}, errtrace.Wrap(newInvalidURLErr("%q does not match the URL grammar", string(s)))
	}

	var ss Spans
	for i := range NumGroups {
		start, end := loc[2*(i+1)], loc[2*(i+1)+1]
		if start < 0 {
			continue
		}
		ss.spans[i] = Span{start, end}
		ss.set[i] = true
	}
	return ss, nil
}
