// Package grammar builds RFC 3986 matching patterns and parses URLs into spans.
package grammar

//go:generate go tool errtrace -w .

import (
	"fmt"
	"regexp"
	"sync"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrInvalidURL       Error = "invalid url"
	ErrMalformedPattern Error = "malformed pattern"
)

// MustCompile compiles the pattern p named name.
// A pattern that fails to compile is a programming error, so it panics.
func MustCompile(name, p string) *regexp.Regexp {
	re, err := regexp.Compile(p)
	if err != nil {
		panic(fmt.Errorf("compile %s pattern: %w: %w", name, ErrMalformedPattern, err))
	}
	return re
}

func anchored(p string) string { return `^(?:` + p + `)$` }

var urlRegexp = sync.OnceValue(func() *regexp.Regexp {
	re := MustCompile("URL", URLPattern())
	if n := re.NumSubexp(); n != NumGroups {
		panic(fmt.Errorf("compile URL pattern: %w: got %d groups, want %d", ErrMalformedPattern, n, NumGroups))
	}
	return re
})

// Matcher returns the compiled [URLPattern].
// It is compiled on the first call and shared afterwards.
func Matcher() *regexp.Regexp { return urlRegexp() }

var regNameRegexp = sync.OnceValue(func() *regexp.Regexp {
	return MustCompile("reg-name", anchored(RegName()))
})

// IsIPv4 reports whether s is an RFC 3986 IPv4 address.
func IsIPv4[T ~string | ~[]byte](s T) bool { return matchRule(ipv4Op, s) }

// IsIPv6 reports whether s is an IPv6 address without brackets.
func IsIPv6[T ~string | ~[]byte](s T) bool { return matchRule(ipv6Op, s) }

// IsIPvFuture reports whether s is an IPvFuture address without brackets.
func IsIPvFuture[T ~string | ~[]byte](s T) bool { return matchRule(ipvFutureOp, s) }

// IsIPLiteral reports whether s is a bracketed IPv6 or IPvFuture address.
func IsIPLiteral[T ~string | ~[]byte](s T) bool { return matchRule(ipLiteralOp, s) }

// IsRegName reports whether s is a non-empty registered name.
func IsRegName[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	switch in := any(s).(type) {
	case string:
		return regNameRegexp().MatchString(in)
	case []byte:
		return regNameRegexp().Match(in)
	default:
		return regNameRegexp().MatchString(string(s))
	}
}
