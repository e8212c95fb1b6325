// Package hostid makes libp2p identity of the bootstrap node out of its secp256k1 key
package hostid

import (
	"fmt"
	"net"

	p2pcrypto "github.com/libp2p/go-libp2p/core/crypto"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"
	"github.com/rhonix/rboot/keys"
)

const DefaultPort = 40400

// FromPrivateKey returns libp2p host ID of the node key
func FromPrivateKey(k *keys.PrivateKey) (peer.ID, error) {
	if k == nil {
		return "", fmt.Errorf("hostid: %w: nil private key", keys.ErrInvalidKey)
	}
	pklpp, err := p2pcrypto.UnmarshalSecp256k1PrivateKey(k.Bytes())
	if err != nil {
		return "", fmt.Errorf("hostid: %w", err)
	}
	return peer.IDFromPrivateKey(pklpp)
}

// BootstrapAddr makes /ip4|ip6|dns/<host>/tcp/<port>/p2p/<id>
func BootstrapAddr(host string, port int, id peer.ID) (multiaddr.Multiaddr, error) {
	if host == "" {
		return nil, fmt.Errorf("hostid: host is empty")
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("hostid: wrong port %d", port)
	}
	if err := id.Validate(); err != nil {
		return nil, fmt.Errorf("hostid: %w", err)
	}
	var hostAddr multiaddr.Multiaddr
	var err error
	if ip := net.ParseIP(host); ip != nil {
		hostAddr, err = manet.FromIP(ip)
	} else {
		hostAddr, err = multiaddr.NewComponent("dns", host)
	}
	if err != nil {
		return nil, fmt.Errorf("hostid: wrong host '%s': %w", host, err)
	}
	tail, err := multiaddr.NewMultiaddr(fmt.Sprintf("/tcp/%d/p2p/%s", port, id.String()))
	if err != nil {
		return nil, fmt.Errorf("hostid: %w", err)
	}
	return hostAddr.Encapsulate(tail), nil
}

// AddrInfo splits bootstrap multiaddr into host ID and transport address
func AddrInfo(ma multiaddr.Multiaddr) (*peer.AddrInfo, error) {
	return peer.AddrInfoFromP2pAddr(ma)
}
