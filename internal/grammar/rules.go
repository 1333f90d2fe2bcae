package grammar

import "strconv"

// RFC 3986 productions as RE2 fragments.
// See https://datatracker.ietf.org/doc/html/rfc3986#appendix-A.
// Every fragment is non-capturing; the only capturing groups live in [URLPattern].

const (
	unreserved = `[a-zA-Z0-9\-._~]`
	pctEncoded = `%[[:xdigit:]]{2}`
	subDelims  = `[!$&'()*+,;=]`
	pchar      = `(?:` + unreserved + `|` + pctEncoded + `|` + subDelims + `|[:@])`

	// userinfo, reg-name share the same alphabet, ':' and '@' are delimiters there.
	uchar = `(?:` + unreserved + `|` + pctEncoded + `|` + subDelims + `)`
)

// Scheme returns the RFC 3986 "scheme" fragment.
func Scheme() string { return `[a-zA-Z][a-zA-Z0-9+\-.]*` }

// User returns the user part of the RFC 3986 "userinfo" fragment.
func User() string { return uchar + `*` }

// Password returns the password part of the RFC 3986 "userinfo" fragment.
func Password() string { return uchar + `*` }

// Host returns the RFC 3986 "host" fragment.
// Alternatives are tried in order: IP-literal, IPv4address, reg-name.
func Host() string {
	return `(?:` + IPLiteral() + `|` + IPv4() + `|` + RegName() + `)`
}

// IPLiteral returns the RFC 3986 "IP-literal" fragment.
func IPLiteral() string {
	return `\[(?:` + IPv6() + `|` + IPvFuture() + `)\]`
}

// IPvFuture returns the RFC 3986 "IPvFuture" fragment.
func IPvFuture() string {
	return `[vV][[:xdigit:]]+\.(?:` + unreserved + `|` + subDelims + `|:)+`
}

const decOctet = `(?:25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9][0-9]|[0-9])`

// IPv4 returns the RFC 3986 "IPv4address" fragment.
func IPv4() string {
	return `(?:` + decOctet + `\.` + decOctet + `\.` + decOctet + `\.` + decOctet + `)`
}

const h16 = `[[:xdigit:]]{1,4}`

// IPv6 returns the RFC 3986 "IPv6address" fragment.
func IPv6() string {
	ls32 := `(?:` + h16 + `:` + h16 + `|` + IPv4() + `)`
	cases := [...]string{
		//                            6( h16 ":" ) ls32
		`(?:` + h16 + `:){6}` + ls32,
		//                       "::" 5( h16 ":" ) ls32
		`::(?:` + h16 + `:){5}` + ls32,
		// [               h16 ] "::" 4( h16 ":" ) ls32
		`(?:` + h16 + `)?::(?:` + h16 + `:){4}` + ls32,
		// [ *1( h16 ":" ) h16 ] "::" 3( h16 ":" ) ls32
		`(?:(?:` + h16 + `:){0,1}` + h16 + `)?::(?:` + h16 + `:){3}` + ls32,
		// [ *2( h16 ":" ) h16 ] "::" 2( h16 ":" ) ls32
		`(?:(?:` + h16 + `:){0,2}` + h16 + `)?::(?:` + h16 + `:){2}` + ls32,
		// [ *3( h16 ":" ) h16 ] "::"    h16 ":"   ls32
		`(?:(?:` + h16 + `:){0,3}` + h16 + `)?::` + h16 + `:` + ls32,
		// [ *4( h16 ":" ) h16 ] "::"              ls32
		`(?:(?:` + h16 + `:){0,4}` + h16 + `)?::` + ls32,
		// [ *5( h16 ":" ) h16 ] "::"              h16
		`(?:(?:` + h16 + `:){0,5}` + h16 + `)?::` + h16,
		// [ *6( h16 ":" ) h16 ] "::"
		`(?:(?:` + h16 + `:){0,6}` + h16 + `)?::`,
	}

	p := `(?:` + cases[0]
	for _, c := range cases[1:] {
		p += `|` + c
	}
	return p + `)`
}

// RegName returns the RFC 3986 "reg-name" fragment.
func RegName() string { return uchar + `*` }

// Port returns the RFC 3986 "port" fragment.
func Port() string { return `[0-9]*` }

// Path returns the "path-absolute / path-abempty" alternation.
// Both alternatives accept the empty string.
func Path() string {
	const (
		segment     = pchar + `*`
		segmentNZ   = pchar + `+`
		pathAbempty = `(?:/` + segment + `)*`
	)
	pathAbsolute := `(?:/(?:` + segmentNZ + pathAbempty + `)?)`
	return `(?:` + pathAbsolute + `|` + pathAbempty + `)`
}

// Query returns the RFC 3986 "query" fragment without the leading '?'.
func Query() string { return `(?:` + pchar + `|[/?])*` }

// Fragment returns the RFC 3986 "fragment" fragment without the leading '#'.
func Fragment() string { return `(?:` + pchar + `|[/?])*` }

// Group is an index of a capturing group in [URLPattern].
type Group int

// Capturing groups of [URLPattern] in their order of appearance.
const (
	GroupScheme Group = iota + 1
	GroupUser
	GroupPassword
	GroupHost
	GroupPort
	GroupPath
	GroupQuery
	GroupFragment

	NumGroups = int(GroupFragment)
)

var groupNames = [...]string{
	GroupScheme:   "scheme",
	GroupUser:     "user",
	GroupPassword: "password",
	GroupHost:     "host",
	GroupPort:     "port",
	GroupPath:     "path",
	GroupQuery:    "query",
	GroupFragment: "fragment",
}

func (g Group) String() string {
	if g < GroupScheme || g > GroupFragment {
		return "group(" + strconv.Itoa(int(g)) + ")"
	}
	return groupNames[g]
}

// URLPattern returns the composite pattern matching a whole URL.
//
// The pattern has exactly [NumGroups] capturing groups in [Group] order.
// Query and fragment groups include their leading delimiter.
// The host group is lazily optional: an empty host does not participate in the match,
// so "/a/b" yields no host while "localhost" still does.
func URLPattern() string {
	return `^` +
		`(?:(` + Scheme() + `)://)?` +
		`(?:(` + User() + `)(?::(` + Password() + `))?@)?` +
		`(` + Host() + `)??` +
		`(?::(` + Port() + `))?` +
		`(` + Path() + `)` +
		`(\?` + Query() + `)?` +
		`(#` + Fragment() + `)?` +
		`$`
}
