package hostid

import (
	"strings"
	"testing"

	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/multiformats/go-multiaddr"
	"github.com/rhonix/rboot/keys"
	"github.com/rhonix/rboot/util/testutil"
	"github.com/stretchr/testify/require"
)

func TestFromPrivateKey(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		pk := testutil.GetTestingPrivateKey(1)
		id1, err := FromPrivateKey(pk)
		require.NoError(t, err)
		id2, err := FromPrivateKey(keys.MustFromHex(pk.Hex()))
		require.NoError(t, err)
		require.EqualValues(t, id1, id2)
		require.True(t, strings.HasPrefix(id1.String(), "16Uiu2"))
		t.Logf("host ID: %s", id1.String())

		decoded, err := peer.Decode(id1.String())
		require.NoError(t, err)
		require.EqualValues(t, id1, decoded)
	})
	t.Run("public key inside", func(t *testing.T) {
		pk := testutil.GetTestingPrivateKey(2)
		id, err := FromPrivateKey(pk)
		require.NoError(t, err)
		pub, err := id.ExtractPublicKey()
		require.NoError(t, err)
		raw, err := pub.Raw()
		require.NoError(t, err)
		require.EqualValues(t, pk.PublicKey().BytesCompressed(), raw)
	})
	t.Run("different keys", func(t *testing.T) {
		id1, err := FromPrivateKey(testutil.GetTestingPrivateKey(1))
		require.NoError(t, err)
		id2, err := FromPrivateKey(testutil.GetTestingPrivateKey(2))
		require.NoError(t, err)
		require.NotEqualValues(t, id1, id2)
	})
	t.Run("nil", func(t *testing.T) {
		_, err := FromPrivateKey(nil)
		require.ErrorIs(t, err, keys.ErrInvalidKey)
	})
}

func TestBootstrapAddr(t *testing.T) {
	id, err := FromPrivateKey(testutil.GetTestingPrivateKey(3))
	require.NoError(t, err)

	t.Run("ip4", func(t *testing.T) {
		ma, err := BootstrapAddr("10.1.2.3", DefaultPort, id)
		require.NoError(t, err)
		require.EqualValues(t, "/ip4/10.1.2.3/tcp/40400/p2p/"+id.String(), ma.String())

		info, err := AddrInfo(ma)
		require.NoError(t, err)
		require.EqualValues(t, id, info.ID)
		require.EqualValues(t, 1, len(info.Addrs))
		require.EqualValues(t, "/ip4/10.1.2.3/tcp/40400", info.Addrs[0].String())

		v, err := ma.ValueForProtocol(multiaddr.P_P2P)
		require.NoError(t, err)
		require.EqualValues(t, id.String(), v)
	})
	t.Run("ip6", func(t *testing.T) {
		ma, err := BootstrapAddr("::1", 40401, id)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(ma.String(), "/ip6/::1/tcp/40401/p2p/"))
	})
	t.Run("ip4 mapped into ip6", func(t *testing.T) {
		ma, err := BootstrapAddr("::ffff:10.1.2.3", DefaultPort, id)
		require.NoError(t, err)
		require.EqualValues(t, "/ip4/10.1.2.3/tcp/40400/p2p/"+id.String(), ma.String())
	})
	t.Run("dns", func(t *testing.T) {
		ma, err := BootstrapAddr("node0.example.org", DefaultPort, id)
		require.NoError(t, err)
		require.EqualValues(t, "/dns/node0.example.org/tcp/40400/p2p/"+id.String(), ma.String())
	})
	t.Run("wrong", func(t *testing.T) {
		_, err := BootstrapAddr("", DefaultPort, id)
		require.Error(t, err)
		_, err = BootstrapAddr("127.0.0.1", 0, id)
		require.Error(t, err)
		_, err = BootstrapAddr("127.0.0.1", 70000, id)
		require.Error(t, err)
		_, err = BootstrapAddr("127.0.0.1", DefaultPort, "")
		require.Error(t, err)
	})
}

func TestPublicOnly(t *testing.T) {
	id, err := FromPrivateKey(testutil.GetTestingPrivateKey(4))
	require.NoError(t, err)

	mustAddr := func(host string) multiaddr.Multiaddr {
		ret, err := BootstrapAddr(host, DefaultPort, id)
		require.NoError(t, err)
		return ret
	}
	public := mustAddr("8.8.8.8")
	local := mustAddr("192.168.1.10")
	loopback := mustAddr("127.0.0.1")
	dns := mustAddr("node0.example.org")

	all := []multiaddr.Multiaddr{public, local, loopback, dns}
	require.EqualValues(t, []multiaddr.Multiaddr{public, dns}, PublicOnly(false)(all))
	require.EqualValues(t, []multiaddr.Multiaddr{public, local, dns}, PublicOnly(true)(all))

	require.True(t, IsPublic(public, false))
	require.False(t, IsPublic(local, false))
	require.True(t, IsPublic(local, true))
	require.False(t, IsPublic(loopback, true))
}
