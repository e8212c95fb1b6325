package genesis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rhonix/rboot/keys"
)

// BondEntry is validator's public key with its initial stake
type BondEntry struct {
	PublicKey *keys.PublicKey
	Stake     int64
}

// Line is '<uncompressed public key hex> <stake>'
func (b BondEntry) Line() string {
	return fmt.Sprintf("%s %d", b.PublicKey.Hex(), b.Stake)
}

func (b BondEntry) String() string {
	return b.Line()
}

// BondsFileLines renders the genesis bonds file in the order of entries. Stakes must be positive
func BondsFileLines(entries []BondEntry) ([]string, error) {
	for i := range entries {
		if entries[i].Stake <= 0 {
			return nil, fmt.Errorf("%w: bond #%d must have positive stake, got %d", ErrInvalidBalance, i, entries[i].Stake)
		}
		if entries[i].PublicKey == nil {
			return nil, fmt.Errorf("%w: bond #%d has no public key", keys.ErrInvalidKey, i)
		}
	}
	ret := make([]string, len(entries))
	for i := range entries {
		ret[i] = entries[i].Line()
	}
	return ret, nil
}

func ParseBondLine(line string) (BondEntry, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return BondEntry{}, fmt.Errorf("%w: expected '<public key> <stake>', got '%s'", ErrWrongFormat, line)
	}
	pub, err := keys.PublicKeyFromHex(parts[0])
	if err != nil {
		return BondEntry{}, err
	}
	stake, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return BondEntry{}, fmt.Errorf("%w: '%s': %v", ErrInvalidBalance, parts[1], err)
	}
	if stake <= 0 {
		return BondEntry{}, fmt.Errorf("%w: stake must be positive, got %d", ErrInvalidBalance, stake)
	}
	return BondEntry{PublicKey: pub, Stake: stake}, nil
}
