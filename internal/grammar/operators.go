package grammar

import "github.com/ghettovoice/abnf"

func init() {
	abnf.EnableNodeCache(1024)
}

// RFC 3986 host productions as ABNF operators.
// They back the host predicates; the regexp fragments in rules.go
// describe the same languages for the composite URL pattern.

func char(key string, c byte) abnf.Operator {
	return abnf.Range(key, []byte{c}, []byte{c})
}

func chars(key, set string) abnf.Operator {
	ops := make([]abnf.Operator, len(set))
	for i := range len(set) {
		ops[i] = char(set[i:i+1], set[i])
	}
	return abnf.Alt(key, ops[0], ops[1:]...)
}

func repeat1Inf(key string, op abnf.Operator) abnf.Operator {
	return abnf.Concat(key, op, abnf.Repeat0Inf(key, op))
}

func optional(key string, op abnf.Operator) abnf.Operator {
	return abnf.Repeat(key, 0, 1, op)
}

var (
	digitOp  = abnf.Range("DIGIT", []byte("0"), []byte("9"))
	hexdigOp = abnf.Alt(
		"HEXDIG",
		digitOp,
		abnf.Range("%x41-46", []byte("A"), []byte("F")),
		abnf.Range("%x61-66", []byte("a"), []byte("f")),
	)
	alphaOp = abnf.Alt(
		"ALPHA",
		abnf.Range("%x41-5A", []byte("A"), []byte("Z")),
		abnf.Range("%x61-7A", []byte("a"), []byte("z")),
	)

	colonOp  = char(`":"`, ':')
	dotOp    = char(`"."`, '.')
	dcolonOp = abnf.Concat(`"::"`, colonOp, colonOp)

	unreservedOp = abnf.Alt("unreserved", alphaOp, digitOp, chars("mark", "-._~"))
	subDelimsOp  = chars("sub-delims", "!$&'()*+,;=")

	decOctetOp = abnf.Alt(
		"dec-octet",
		abnf.Concat("%x32.35 %x30-35", char(`"2"`, '2'), char(`"5"`, '5'), abnf.Range("%x30-35", []byte("0"), []byte("5"))),
		abnf.Concat(`"2" %x30-34 DIGIT`, char(`"2"`, '2'), abnf.Range("%x30-34", []byte("0"), []byte("4")), digitOp),
		abnf.Concat(`"1" 2DIGIT`, char(`"1"`, '1'), digitOp, digitOp),
		abnf.Concat("%x31-39 DIGIT", abnf.Range("%x31-39", []byte("1"), []byte("9")), digitOp),
		digitOp,
	)

	ipv4Op = abnf.Concat("IPv4address", decOctetOp, dotOp, decOctetOp, dotOp, decOctetOp, dotOp, decOctetOp)

	h16Op      = abnf.Repeat("h16", 1, 4, hexdigOp)
	h16ColonOp = abnf.Concat(`h16 ":"`, h16Op, colonOp)
	ls32Op     = abnf.Alt("ls32", abnf.Concat(`h16 ":" h16`, h16Op, colonOp, h16Op), ipv4Op)

	ipv6Op = abnf.Alt(
		"IPv6address",
		abnf.Concat(`6( h16 ":" ) ls32`, abnf.Repeat(`6( h16 ":" )`, 6, 6, h16ColonOp), ls32Op),
		abnf.Concat(`"::" 5( h16 ":" ) ls32`, dcolonOp, abnf.Repeat(`5( h16 ":" )`, 5, 5, h16ColonOp), ls32Op),
		abnf.Concat(`[ h16 ] "::" 4( h16 ":" ) ls32`, optional("[ h16 ]", h16Op), dcolonOp, abnf.Repeat(`4( h16 ":" )`, 4, 4, h16ColonOp), ls32Op),
		abnf.Concat(`[ *1( h16 ":" ) h16 ] "::" 3( h16 ":" ) ls32`, ipv6Prefix(1), dcolonOp, abnf.Repeat(`3( h16 ":" )`, 3, 3, h16ColonOp), ls32Op),
		abnf.Concat(`[ *2( h16 ":" ) h16 ] "::" 2( h16 ":" ) ls32`, ipv6Prefix(2), dcolonOp, abnf.Repeat(`2( h16 ":" )`, 2, 2, h16ColonOp), ls32Op),
		abnf.Concat(`[ *3( h16 ":" ) h16 ] "::" h16 ":" ls32`, ipv6Prefix(3), dcolonOp, h16ColonOp, ls32Op),
		abnf.Concat(`[ *4( h16 ":" ) h16 ] "::" ls32`, ipv6Prefix(4), dcolonOp, ls32Op),
		abnf.Concat(`[ *5( h16 ":" ) h16 ] "::" h16`, ipv6Prefix(5), dcolonOp, h16Op),
		abnf.Concat(`[ *6( h16 ":" ) h16 ] "::"`, ipv6Prefix(6), dcolonOp),
	)

	ipvFutureOp = abnf.Concat(
		"IPvFuture",
		chars(`"v"`, "vV"),
		repeat1Inf("1*HEXDIG", hexdigOp),
		dotOp,
		repeat1Inf(`1*( unreserved / sub-delims / ":" )`, abnf.Alt(`unreserved / sub-delims / ":"`, unreservedOp, subDelimsOp, colonOp)),
	)

	ipLiteralOp = abnf.Concat(
		"IP-literal",
		char(`"["`, '['),
		abnf.Alt("IPv6address / IPvFuture", ipv6Op, ipvFutureOp),
		char(`"]"`, ']'),
	)
)

// ipv6Prefix builds "[ *n( h16 ":" ) h16 ]".
func ipv6Prefix(n uint) abnf.Operator {
	return optional(
		`[ *( h16 ":" ) h16 ]`,
		abnf.Concat(`*( h16 ":" ) h16`, abnf.Repeat(`*( h16 ":" )`, 0, n, h16ColonOp), h16Op),
	)
}

// matchRule reports whether op matches the whole s.
func matchRule[T ~string | ~[]byte](op abnf.Operator, s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}
