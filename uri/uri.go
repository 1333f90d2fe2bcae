package uri

//go:generate go tool errtrace -w .

import (
	"context"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlparts/internal/grammar"
	"github.com/ghettovoice/urlparts/internal/log"
)

// Byteseq is the set of input types accepted by [Parse].
type Byteseq interface {
	~string | ~[]byte
}

// Error is the type of errors returned by the package.
type Error = grammar.Error

// ErrInvalidURL is returned when the input doesn't match the URL grammar.
const ErrInvalidURL = grammar.ErrInvalidURL

// Span is a half-open byte range [Start, End) of the parsed input.
type Span = grammar.Span

// Component identifies a URL component.
type Component int

const (
	ComponentScheme   = Component(grammar.GroupScheme)
	ComponentUser     = Component(grammar.GroupUser)
	ComponentPassword = Component(grammar.GroupPassword)
	ComponentHost     = Component(grammar.GroupHost)
	ComponentPort     = Component(grammar.GroupPort)
	ComponentPath     = Component(grammar.GroupPath)
	ComponentQuery    = Component(grammar.GroupQuery)
	ComponentFragment = Component(grammar.GroupFragment)
)

func (c Component) String() string { return grammar.Group(c).String() }

// Components lists all components in the order they appear in a URL.
var Components = [...]Component{
	ComponentScheme,
	ComponentUser,
	ComponentPassword,
	ComponentHost,
	ComponentPort,
	ComponentPath,
	ComponentQuery,
	ComponentFragment,
}

// Options configure parsing.
// The zero value is a valid configuration.
type Options struct {
	// Log receives a debug record for every rejected input.
	// If nil, nothing is logged.
	Log *slog.Logger
}

func (o *Options) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Noop
	}
	return o.Log
}

// URL is a parsed URL.
// It holds the original input and the spans of its components.
type URL[T Byteseq] struct {
	full  T
	spans grammar.Spans
}

// Parse parses the whole input s (string or []byte) as a URL.
// The returned URL refers to s, nothing is copied.
// If s is not a URL, an error wrapping [ErrInvalidURL] is returned.
func Parse[T Byteseq](s T) (*URL[T], error) {
	return errtrace.Wrap2(ParseWithOptions(s, nil))
}

// ParseWithOptions is like [Parse] but accepts options.
// opts may be nil.
func ParseWithOptions[T Byteseq](s T, opts *Options) (*URL[T], error) {
	spans, err := grammar.ParseURL(s)
	if err != nil {
		opts.log().LogAttrs(context.Background(), slog.LevelDebug, "reject malformed URL",
			slog.Any("input", log.StringValue(s)),
			slog.Any("error", err),
		)
		return nil, errtrace.Wrap(err)
	}
	return &URL[T]{full: s, spans: spans}, nil
}

// MustParse is like [Parse] but panics if s is not a URL.
func MustParse[T Byteseq](s T) *URL[T] {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Full returns the original input.
func (u *URL[T]) Full() T {
	if u == nil {
		var zero T
		return zero
	}
	return u.full
}

// Span returns the span of the component c in the original input
// and whether the component is present.
func (u *URL[T]) Span(c Component) (Span, bool) {
	if u == nil {
		return Span{}, false
	}
	return u.spans.Get(grammar.Group(c))
}

// Get returns the component c and whether it is present.
func (u *URL[T]) Get(c Component) (T, bool) {
	sp, ok := u.Span(c)
	if !ok {
		var zero T
		return zero, false
	}
	return grammar.Slice(u.full, sp), true
}

// Scheme returns the scheme without the "://" delimiter, e.g. "https".
func (u *URL[T]) Scheme() (T, bool) { return u.Get(ComponentScheme) }

// User returns the user name from the userinfo.
func (u *URL[T]) User() (T, bool) { return u.Get(ComponentUser) }

// Password returns the password from the userinfo.
// Passing passwords in URLs is deprecated by RFC 3986, the value is kept as is.
func (u *URL[T]) Password() (T, bool) { return u.Get(ComponentPassword) }

// Host returns the host.
// IP literals are returned with their brackets, e.g. "[::1]".
func (u *URL[T]) Host() (T, bool) { return u.Get(ComponentHost) }

// Port returns the port digits without the ':' delimiter.
// The port may be present but empty, e.g. in "http://host:/".
func (u *URL[T]) Port() (T, bool) { return u.Get(ComponentPort) }

// Path returns the path.
// It is always present for a successfully parsed URL, but may be empty.
func (u *URL[T]) Path() (T, bool) { return u.Get(ComponentPath) }

// Query returns the query including the leading '?'.
// Use [URL.DispatchQuery] to split it into entries.
func (u *URL[T]) Query() (T, bool) { return u.Get(ComponentQuery) }

// Fragment returns the fragment including the leading '#'.
func (u *URL[T]) Fragment() (T, bool) { return u.Get(ComponentFragment) }
