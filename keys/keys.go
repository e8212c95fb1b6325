// Package keys implements secp256k1 key pairs used by wallets and validators
package keys

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/rhonix/rboot/util"
	"go.uber.org/atomic"
	"golang.org/x/crypto/blake2b"
)

const (
	PrivateKeySize             = 32
	PublicKeySizeUncompressed  = 65
	PublicKeySizeCompressed    = 33
	privateKeyHexLength        = 2 * PrivateKeySize
	uncompressedPublicKeyTag   = 0x04
	redactedPrivateKeyTemplate = "PrivateKey(pub=%s..)"
)

var ErrInvalidKey = errors.New("invalid key")

type (
	// PrivateKey is an immutable secp256k1 scalar in the range [1, n-1].
	// The public key is derived on first use and cached
	PrivateKey struct {
		scalar    btcec.ModNScalar
		publicKey atomic.Pointer[PublicKey]
	}

	PublicKey struct {
		pk *btcec.PublicKey
	}
)

// TrimHex removes surrounding spaces and optional '0x' or '0X' prefix
func TrimHex(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// FromHex parses 64 hex characters, case-insensitive. Optional '0x' prefix and surrounding spaces are ignored
func FromHex(s string) (*PrivateKey, error) {
	s = TrimHex(s)
	if len(s) != privateKeyHexLength {
		return nil, fmt.Errorf("%w: expected %d hex characters, got %d", ErrInvalidKey, privateKeyHexLength, len(s))
	}
	bin, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return FromBytes(bin)
}

func MustFromHex(s string) *PrivateKey {
	ret, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return ret
}

// FromBytes makes private key from 32 big-endian bytes. Zero and values >= curve order are rejected
func FromBytes(data []byte) (*PrivateKey, error) {
	if len(data) != PrivateKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKey, PrivateKeySize, len(data))
	}
	ret := &PrivateKey{}
	if overflow := ret.scalar.SetByteSlice(data); overflow {
		return nil, fmt.Errorf("%w: scalar is not less than the curve order", ErrInvalidKey)
	}
	if ret.scalar.IsZero() {
		return nil, fmt.Errorf("%w: scalar is zero", ErrInvalidKey)
	}
	return ret, nil
}

// FromSeed uses blake2b-256 of the seed as the scalar
func FromSeed(seed []byte) (*PrivateKey, error) {
	h := blake2b.Sum256(seed)
	return FromBytes(h[:])
}

// Generate returns random private key from the system source of randomness
func Generate() (*PrivateKey, error) {
	pk, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}
	return FromBytes(pk.Serialize())
}

// IsValid is false for nil and for the zero value, which was not made by any constructor
func (k *PrivateKey) IsValid() bool {
	return k != nil && !k.scalar.IsZero()
}

// PublicKey returns k*G. Concurrent first calls may compute it more than once,
// all but the first stored result are discarded
func (k *PrivateKey) PublicKey() *PublicKey {
	if ret := k.publicKey.Load(); ret != nil {
		return ret
	}
	util.Assertf(k.IsValid(), "%w: zero scalar", ErrInvalidKey)
	_, pub := btcec.PrivKeyFromBytes(k.Bytes())
	ret := &PublicKey{pk: pub}
	if k.publicKey.CompareAndSwap(nil, ret) {
		return ret
	}
	return k.publicKey.Load()
}

func (k *PrivateKey) Bytes() []byte {
	ret := k.scalar.Bytes()
	return ret[:]
}

func (k *PrivateKey) Hex() string {
	return hex.EncodeToString(k.Bytes())
}

// String never reveals the private key
func (k *PrivateKey) String() string {
	return fmt.Sprintf(redactedPrivateKeyTemplate, k.PublicKey().Hex()[:10])
}

func (k *PrivateKey) Equal(another *PrivateKey) bool {
	return k.scalar.Equals(&another.scalar)
}

// PublicKeyFromBytes accepts compressed (33 bytes) or uncompressed (65 bytes) serialization
func PublicKeyFromBytes(data []byte) (*PublicKey, error) {
	if len(data) != PublicKeySizeUncompressed && len(data) != PublicKeySizeCompressed {
		return nil, fmt.Errorf("%w: wrong public key length %d", ErrInvalidKey, len(data))
	}
	pk, err := btcec.ParsePubKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return &PublicKey{pk: pk}, nil
}

func PublicKeyFromHex(s string) (*PublicKey, error) {
	bin, err := hex.DecodeString(TrimHex(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return PublicKeyFromBytes(bin)
}

// Bytes is the uncompressed form 0x04 || X || Y
func (p *PublicKey) Bytes() []byte {
	return p.pk.SerializeUncompressed()
}

func (p *PublicKey) BytesCompressed() []byte {
	return p.pk.SerializeCompressed()
}

// XY is the uncompressed form without the leading tag byte
func (p *PublicKey) XY() []byte {
	ret := p.Bytes()
	if ret[0] != uncompressedPublicKeyTag {
		panic(fmt.Errorf("unexpected public key serialization tag 0x%02x", ret[0]))
	}
	return ret[1:]
}

func (p *PublicKey) Hex() string {
	return hex.EncodeToString(p.Bytes())
}

func (p *PublicKey) String() string {
	return p.Hex()
}

func (p *PublicKey) Equal(another *PublicKey) bool {
	return p.pk.IsEqual(another.pk)
}

// BTCEC exposes underlying key for libraries which need it
func (p *PublicKey) BTCEC() *btcec.PublicKey {
	return p.pk
}
