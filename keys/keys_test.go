package keys

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rhonix/rboot/util"
	"github.com/stretchr/testify/require"
)

const (
	curveOrderHex      = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
	curveOrderMinusOne = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140"
	generatorHex       = "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
)

var vectors = []struct {
	priv string
	pub  string
}{
	{
		priv: "80366db5fbb8dad7946f27037422715e4176dda41d582224db87b6c3b783d709",
		pub:  "04126107bc353c73e044fb21a5085aeafeecd69895fc05ec5033764a586bf044ddb19da5140a00912d892bfe8e10aa34eb7f9a68308646c3ac8804096ba605c2d2",
	},
	{
		priv: "120d42175739387af0264921bb117e4c4c05fbe2ce5410031e8b158c6e414bb5",
		pub:  "0412ce31a3c3cbf9c69c098e593568c476a6bf7efdf9f7579c80e5328af05db7693b077d04fabbed28bb4e2d28aaba4ee50af6eddfab957c9c3c16d629c9d6aac3",
	},
	{
		priv: "1f52d0bce0a92f5c79f2a88aae6d391ddf853e2eb8e688c5aa68002205f92dad",
		pub:  "04f42348554ab10387739d6f709ddba0eb9b80792f57ed68a1c9341635c0777590e9dbdd316c57cff51587f2f320e30605e6641e042f030b83aaaa3a3268a00fb0",
	},
}

func TestFromHex(t *testing.T) {
	t.Run("vectors", func(t *testing.T) {
		for _, v := range vectors {
			k, err := FromHex(v.priv)
			require.NoError(t, err)
			require.EqualValues(t, v.priv, k.Hex())
			require.EqualValues(t, v.pub, k.PublicKey().Hex())
			require.EqualValues(t, PublicKeySizeUncompressed, len(k.PublicKey().Bytes()))
			require.EqualValues(t, 64, len(k.PublicKey().XY()))
		}
	})
	t.Run("case insensitive", func(t *testing.T) {
		k1, err := FromHex(vectors[0].priv)
		require.NoError(t, err)
		k2, err := FromHex(strings.ToUpper(vectors[0].priv))
		require.NoError(t, err)
		require.True(t, k1.Equal(k2))
		k3, err := FromHex(" 0x" + vectors[0].priv + "\n")
		require.NoError(t, err)
		require.True(t, k1.Equal(k3))
	})
	t.Run("generator", func(t *testing.T) {
		k, err := FromHex("0000000000000000000000000000000000000000000000000000000000000001")
		require.NoError(t, err)
		require.EqualValues(t, generatorHex, k.PublicKey().Hex())
	})
	t.Run("range", func(t *testing.T) {
		_, err := FromHex(curveOrderMinusOne)
		require.NoError(t, err)

		_, err = FromHex(curveOrderHex)
		require.True(t, errors.Is(err, ErrInvalidKey))

		_, err = FromHex("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
		require.True(t, errors.Is(err, ErrInvalidKey))

		_, err = FromHex(strings.Repeat("0", 64))
		require.True(t, errors.Is(err, ErrInvalidKey))
	})
	t.Run("malformed", func(t *testing.T) {
		for _, s := range []string{
			"",
			vectors[0].priv[:63],
			vectors[0].priv + "0",
			vectors[0].priv[:62],
			vectors[0].priv[:63] + "g",
			"z" + vectors[0].priv[1:],
		} {
			k, err := FromHex(s)
			require.Nil(t, k)
			require.True(t, errors.Is(err, ErrInvalidKey), "input '%s'", s)
		}
	})
}

func TestFromBytes(t *testing.T) {
	k, err := FromBytes(MustFromHex(vectors[1].priv).Bytes())
	require.NoError(t, err)
	require.EqualValues(t, vectors[1].priv, k.Hex())

	_, err = FromBytes(make([]byte, 31))
	require.True(t, errors.Is(err, ErrInvalidKey))
	_, err = FromBytes(make([]byte, 33))
	require.True(t, errors.Is(err, ErrInvalidKey))

	util.RequirePanicOrErrorWith(t, func() error {
		MustFromHex("not a key")
		return nil
	}, "invalid key", "expected 64 hex characters")
}

func TestTrimHex(t *testing.T) {
	k1, err := FromHex("0x" + vectors[0].priv)
	require.NoError(t, err)
	k2, err := FromHex("  0X" + strings.ToUpper(vectors[0].priv) + "\n")
	require.NoError(t, err)
	require.True(t, k1.Equal(k2))

	pub, err := PublicKeyFromHex("0X" + vectors[0].pub)
	require.NoError(t, err)
	require.True(t, pub.Equal(k1.PublicKey()))

	require.EqualValues(t, "abc", TrimHex(" 0Xabc "))
	require.EqualValues(t, "0", TrimHex("0"))
	require.EqualValues(t, "", TrimHex("0x"))
}

func TestZeroValueKey(t *testing.T) {
	var k *PrivateKey
	require.False(t, k.IsValid())
	require.False(t, (&PrivateKey{}).IsValid())
	require.True(t, MustFromHex(vectors[0].priv).IsValid())

	util.RequirePanicOrErrorWith(t, func() error {
		(&PrivateKey{}).PublicKey()
		return nil
	}, "assertion failed", "invalid key")
}

func TestGenerate(t *testing.T) {
	k1, err := Generate()
	require.NoError(t, err)
	k2, err := Generate()
	require.NoError(t, err)
	require.False(t, k1.Equal(k2))

	back, err := FromHex(k1.Hex())
	require.NoError(t, err)
	require.True(t, back.PublicKey().Equal(k1.PublicKey()))
}

func TestFromSeed(t *testing.T) {
	k1, err := FromSeed([]byte("seed"))
	require.NoError(t, err)
	k2, err := FromSeed([]byte("seed"))
	require.NoError(t, err)
	require.True(t, k1.Equal(k2))
	k3, err := FromSeed([]byte("another seed"))
	require.NoError(t, err)
	require.False(t, k1.Equal(k3))
}

func TestPublicKey(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		k := MustFromHex(vectors[2].priv)
		pub, err := PublicKeyFromHex(vectors[2].pub)
		require.NoError(t, err)
		require.True(t, pub.Equal(k.PublicKey()))

		compressed, err := PublicKeyFromBytes(k.PublicKey().BytesCompressed())
		require.NoError(t, err)
		require.True(t, compressed.Equal(pub))
		require.EqualValues(t, vectors[2].pub, compressed.Hex())
	})
	t.Run("wrong", func(t *testing.T) {
		_, err := PublicKeyFromHex(vectors[2].pub[:64])
		require.True(t, errors.Is(err, ErrInvalidKey))
		_, err = PublicKeyFromHex("xyz")
		require.True(t, errors.Is(err, ErrInvalidKey))
		// not on the curve
		_, err = PublicKeyFromHex("04" + strings.Repeat("11", 64))
		require.True(t, errors.Is(err, ErrInvalidKey))
	})
	t.Run("string is redacted", func(t *testing.T) {
		k := MustFromHex(vectors[0].priv)
		require.NotContains(t, k.String(), vectors[0].priv[:10])
		require.Contains(t, k.String(), vectors[0].pub[:10])
	})
}

func TestPublicKeyConcurrentDerivation(t *testing.T) {
	const n = 50
	k := MustFromHex(vectors[0].priv)
	results := make([]*PublicKey, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = k.PublicKey()
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.Same(t, results[0], results[i])
	}
	require.EqualValues(t, vectors[0].pub, results[0].Hex())
}
