// Package revaddr derives and validates REV addresses.
//
// A REV address is derived from the uncompressed secp256k1 public key:
//
//	ethAddress = keccak256(X || Y)[12:]
//	payload    = coinID(3 bytes) || version(1 byte) || keccak256(ethAddress)
//	address    = base58(payload || blake2b256(payload)[:4])
//
// Both coin ID and version are zero, so every address starts with "1111"
package revaddr

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/lunfardo314/unitrie/common"
	"github.com/mr-tron/base58"
	"github.com/rhonix/rboot/keys"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

const (
	CoinIDHex  = "000000"
	VersionHex = "00"

	EthAddressLength = 20
	HashLength       = 32
	ChecksumLength   = 4
	PrefixLength     = 4
	PayloadLength    = PrefixLength + HashLength
	// AddressBinaryLength is length of the base58-decoded address
	AddressBinaryLength = PayloadLength + ChecksumLength
)

var (
	ErrEncoding       = errors.New("address encoding error")
	ErrInvalidAddress = errors.New("invalid REV address")
)

var prefix = mustDecodeHex(CoinIDHex + VersionHex)

type (
	// Address is the base58 text form. Zero value is not a valid address
	Address string

	EthAddress [EthAddressLength]byte
)

func mustDecodeHex(s string) []byte {
	ret, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return ret
}

func keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

func checksum(payload []byte) []byte {
	h := blake2b.Sum256(payload)
	return h[:ChecksumLength]
}

func EthAddressFromPublicKey(pk *keys.PublicKey) (ret EthAddress) {
	h := keccak256(pk.XY())
	copy(ret[:], h[HashLength-EthAddressLength:])
	return
}

func EthAddressFromHex(s string) (ret EthAddress, err error) {
	bin, err := hex.DecodeString(keys.TrimHex(s))
	if err != nil {
		return ret, fmt.Errorf("%w: wrong ETH address: %v", ErrInvalidAddress, err)
	}
	if len(bin) != EthAddressLength {
		return ret, fmt.Errorf("%w: ETH address must be %d bytes, got %d", ErrInvalidAddress, EthAddressLength, len(bin))
	}
	copy(ret[:], bin)
	return ret, nil
}

func (e EthAddress) Hex() string {
	return hex.EncodeToString(e[:])
}

func (e EthAddress) String() string {
	return "0x" + e.Hex()
}

// FromPublicKey is deterministic: same key always yields the same address
func FromPublicKey(pk *keys.PublicKey) Address {
	return FromEthAddress(EthAddressFromPublicKey(pk))
}

func FromPrivateKey(k *keys.PrivateKey) Address {
	return FromPublicKey(k.PublicKey())
}

func FromEthAddress(eth EthAddress) Address {
	ret, err := FromHash(keccak256(eth[:]))
	if err != nil {
		// keccak256 always produces HashLength bytes
		panic(err)
	}
	return ret
}

func FromEthAddressHex(s string) (Address, error) {
	eth, err := EthAddressFromHex(s)
	if err != nil {
		return "", err
	}
	return FromEthAddress(eth), nil
}

// FromHash makes address from the 32 bytes digest. Any other length is a defect of the caller
func FromHash(hash []byte) (Address, error) {
	if len(hash) != HashLength {
		return "", fmt.Errorf("%w: expected %d bytes of hash, got %d", ErrEncoding, HashLength, len(hash))
	}
	payload := common.Concat(prefix, hash)
	if len(payload) != PayloadLength {
		return "", fmt.Errorf("%w: unexpected payload length %d", ErrEncoding, len(payload))
	}
	return Address(base58.Encode(common.Concat(payload, checksum(payload)))), nil
}

// Parse checks base58 encoding, length, prefix and checksum
func Parse(s string) (Address, error) {
	s = strings.TrimSpace(s)
	bin, err := base58.Decode(s)
	if err != nil {
		return "", fmt.Errorf("%w '%s': %v", ErrInvalidAddress, s, err)
	}
	if len(bin) != AddressBinaryLength {
		return "", fmt.Errorf("%w '%s': expected %d bytes, got %d", ErrInvalidAddress, s, AddressBinaryLength, len(bin))
	}
	payload := bin[:PayloadLength]
	if !bytes.Equal(payload[:PrefixLength], prefix) {
		return "", fmt.Errorf("%w '%s': wrong coin ID or version %s", ErrInvalidAddress, s, hex.EncodeToString(payload[:PrefixLength]))
	}
	if !bytes.Equal(bin[PayloadLength:], checksum(payload)) {
		return "", fmt.Errorf("%w '%s': checksum mismatch", ErrInvalidAddress, s)
	}
	return Address(s), nil
}

func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Hash returns the 32-byte digest part of the address
func (a Address) Hash() ([]byte, error) {
	if _, err := Parse(string(a)); err != nil {
		return nil, err
	}
	bin, _ := base58.Decode(string(a))
	return bin[PrefixLength:PayloadLength], nil
}

func (a Address) String() string {
	return string(a)
}
