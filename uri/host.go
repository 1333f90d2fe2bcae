package uri

import (
	"github.com/miekg/dns"

	"github.com/ghettovoice/urlparts/internal/grammar"
)

// HostKind tells which alternative of the host grammar matched.
type HostKind int

const (
	HostNone HostKind = iota
	HostRegName
	HostIPv4
	HostIPv6
	HostIPvFuture
)

func (k HostKind) String() string {
	switch k {
	case HostNone:
		return "none"
	case HostRegName:
		return "reg-name"
	case HostIPv4:
		return "IPv4address"
	case HostIPv6:
		return "IPv6address"
	case HostIPvFuture:
		return "IPvFuture"
	default:
		return "unknown"
	}
}

// HostKind returns the kind of the host.
func (u *URL[T]) HostKind() HostKind {
	h, ok := u.Host()
	if !ok {
		return HostNone
	}

	switch {
	case grammar.IsIPLiteral(h):
		if grammar.IsIPv6(h[1 : len(h)-1]) {
			return HostIPv6
		}
		return HostIPvFuture
	case grammar.IsIPv4(h):
		return HostIPv4
	case grammar.IsRegName(h):
		return HostRegName
	default:
		return HostNone
	}
}

// HostLabels returns the dot-separated labels of a registered name host,
// e.g. ["www", "example", "com"] for "www.example.com".
// The trailing dot of a fully qualified name is dropped.
// Labels are sub-slices of the original input.
//
// It returns nil if the host is absent, is an IP address
// or is not a valid domain name.
func (u *URL[T]) HostLabels() []T {
	if u.HostKind() != HostRegName {
		return nil
	}

	h, _ := u.Host()
	name := string(h)
	if _, ok := dns.IsDomainName(name); !ok {
		return nil
	}
	idx := dns.Split(name)
	if len(idx) == 0 {
		return nil
	}

	labels := make([]T, len(idx))
	for i, start := range idx {
		end := len(h)
		if i+1 < len(idx) {
			end = idx[i+1] - 1
		} else if dns.IsFqdn(name) {
			end--
		}
		labels[i] = h[start:end]
	}
	return labels
}
