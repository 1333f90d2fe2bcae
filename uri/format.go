package uri

import (
	"bytes"
	"fmt"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urlparts/internal/errorutil"
	"github.com/ghettovoice/urlparts/internal/util"
)

// String returns the original input.
// Parsing the result yields a URL with the same components.
func (u *URL[T]) String() string {
	if u == nil {
		return ""
	}
	return string(u.full)
}

// Format implements [fmt.Formatter].
//
// Verbs %s and %v print the original input, %q prints it quoted.
// Flags '+' and '#' with %v print all components, e.g.
//
//	uri.URL{full: "http://a/b", scheme: "http", user: <nil>, ..., path: "/b", ...}
func (u *URL[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	case 'v':
		if f.Flag('+') || f.Flag('#') {
			fmt.Fprint(f, u.dump())
			return
		}
		fmt.Fprint(f, u.String())
		return
	default:
		fmt.Fprintf(f, "%%!%c(uri.URL=%s)", verb, u.String())
		return
	}
}

func (u *URL[T]) dump() string {
	if u == nil {
		return "uri.URL(nil)"
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString("uri.URL{full: ")
	sb.WriteString(strconv.Quote(string(u.full)))
	for _, c := range Components {
		sb.WriteString(", ")
		sb.WriteString(c.String())
		sb.WriteString(": ")
		if v, ok := u.Get(c); ok {
			sb.WriteString(strconv.Quote(string(v)))
		} else {
			sb.WriteString("<nil>")
		}
	}
	sb.WriteString("}")
	return sb.String()
}

// Equal reports whether the URL has the same components as val.
// val may be URL[T] or *URL[T]; any other type is never equal.
// Components are compared byte by byte, no normalization is applied.
func (u *URL[T]) Equal(val any) bool {
	var other *URL[T]
	switch v := val.(type) {
	case URL[T]:
		other = &v
	case *URL[T]:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	for _, c := range Components {
		v1, ok1 := u.Get(c)
		v2, ok2 := other.Get(c)
		if ok1 != ok2 || string(v1) != string(v2) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the URL.
// The copy owns its input, so it stays valid when the original []byte buffer is reused.
func (u *URL[T]) Clone() *URL[T] {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.full = T(append([]byte(nil), u.full...))
	return &u2
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URL[T]) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// The URL keeps a private copy of text.
// A malformed text yields an error wrapping both [errorutil.ErrInvalidArgument] and [ErrInvalidURL].
func (u *URL[T]) UnmarshalText(text []byte) error {
	if u == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("unmarshal into nil %T", u))
	}

	u1, err := Parse(T(bytes.Clone(text)))
	if err != nil {
		*u = URL[T]{}
		return errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	*u = *u1
	return nil
}
