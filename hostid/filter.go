package hostid

import (
	"fmt"

	"github.com/multiformats/go-multiaddr"
	"github.com/rhonix/rboot/util"
	mamask "github.com/whyrusleeping/multiaddr-filter"
)

// IPv4 and IPv6 prefixes which are local only or unroutable
var reservedRanges = []string{
	"/ip4/0.0.0.0/ipcidr/32",
	"/ip4/100.64.0.0/ipcidr/10",
	"/ip4/127.0.0.0/ipcidr/8",
	"/ip4/169.254.0.0/ipcidr/16",
	"/ip4/192.0.0.0/ipcidr/24",
	"/ip4/192.0.2.0/ipcidr/24",
	"/ip4/198.18.0.0/ipcidr/15",
	"/ip4/198.51.100.0/ipcidr/24",
	"/ip4/203.0.113.0/ipcidr/24",
	"/ip4/240.0.0.0/ipcidr/4",

	"/ip6/::/ipcidr/128",
	"/ip6/::1/ipcidr/128",
	"/ip6/100::/ipcidr/64",
	"/ip6/2001:db8::/ipcidr/32",
}

var localNetworks = []string{
	"/ip4/10.0.0.0/ipcidr/8",
	"/ip4/172.16.0.0/ipcidr/12",
	"/ip4/192.168.0.0/ipcidr/16",

	"/ip6/fc00::/ipcidr/7",
	"/ip6/fe80::/ipcidr/10",
}

type AddressFilter func([]multiaddr.Multiaddr) []multiaddr.Multiaddr

// PublicOnly leaves addresses reachable from outside. DNS addresses always pass
func PublicOnly(allowLocalNetworks bool) AddressFilter {
	filters := multiaddr.NewFilters()

	ranges := reservedRanges
	if !allowLocalNetworks {
		ranges = append(ranges[:len(ranges):len(ranges)], localNetworks...)
	}
	for _, r := range ranges {
		f, err := mamask.NewMask(r)
		util.AssertNoError(err, fmt.Sprintf("wrong ip mask %s", r))
		filters.AddFilter(*f, multiaddr.ActionDeny)
	}
	return func(addresses []multiaddr.Multiaddr) []multiaddr.Multiaddr {
		return util.FilterSlice(addresses, func(m multiaddr.Multiaddr) bool {
			return !filters.AddrBlocked(m)
		})
	}
}

// IsPublic checks single address
func IsPublic(ma multiaddr.Multiaddr, allowLocalNetworks bool) bool {
	return len(PublicOnly(allowLocalNetworks)([]multiaddr.Multiaddr{ma})) == 1
}
