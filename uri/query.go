package uri

import (
	"iter"
	"slices"

	"github.com/ghettovoice/urlparts/internal/util"
)

// QueryKind distinguishes bare query fields from name=value pairs.
type QueryKind int

const (
	// QueryField is a bare token without '=', e.g. "flag" in "?flag&a=1".
	QueryField QueryKind = iota
	// QueryForm is a "name=value" token.
	QueryForm
)

func (k QueryKind) String() string {
	switch k {
	case QueryField:
		return "field"
	case QueryForm:
		return "form"
	default:
		return "unknown"
	}
}

// QueryEntry is a single token of a query string.
// Name and Value are sub-slices of the parsed input, they are not decoded.
type QueryEntry[T Byteseq] struct {
	Kind  QueryKind
	Name  T
	Value T
}

// Field returns a [QueryField] entry.
func Field[T Byteseq](name T) QueryEntry[T] {
	return QueryEntry[T]{Kind: QueryField, Name: name}
}

// Form returns a [QueryForm] entry.
func Form[T Byteseq](name, value T) QueryEntry[T] {
	return QueryEntry[T]{Kind: QueryForm, Name: name, Value: value}
}

func (e QueryEntry[T]) String() string {
	if e.Kind == QueryForm {
		return string(e.Name) + "=" + string(e.Value)
	}
	return string(e.Name)
}

const querySeps = "&;"

// QueryEntries returns an iterator over the query entries in order of appearance.
// See [URL.DispatchQuery] for the splitting rules.
func (u *URL[T]) QueryEntries() iter.Seq[QueryEntry[T]] {
	return func(yield func(QueryEntry[T]) bool) {
		q, ok := u.Query()
		if !ok {
			return
		}
		util.SplitAny(q[1:], querySeps, func(tok T) bool {
			if i := util.IndexByte(tok, '='); i >= 0 {
				return yield(Form(tok[:i], tok[i+1:]))
			}
			return yield(Field(tok))
		})
	}
}

// DispatchQuery splits the query into entries.
//
// The leading '?' is dropped and the rest is split on every '&' or ';'.
// A token containing '=' is split at the first '=' into a [QueryForm] entry,
// any other token, including the empty one, becomes a [QueryField] entry.
// Entries are neither decoded nor deduplicated.
// If the URL has no query, an empty slice is returned.
func (u *URL[T]) DispatchQuery() []QueryEntry[T] {
	return slices.AppendSeq(make([]QueryEntry[T], 0), u.QueryEntries())
}
