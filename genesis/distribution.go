package genesis

import (
	"fmt"
	"math"

	"github.com/rhonix/rboot/keys"
	"github.com/rhonix/rboot/revaddr"
	"github.com/rhonix/rboot/util"
	"github.com/rhonix/rboot/util/lines"
	"gopkg.in/yaml.v2"
)

// Distribution is the YAML source of the wallets and bonds files. The YAML mappings are
// read as yaml.MapSlice, so the order of the document is the order of the output
type Distribution struct {
	wallets []Wallet
	bonds   []BondEntry
}

type distributionYAMLAble struct {
	Wallets yaml.MapSlice `yaml:"wallets"`
	Bonds   yaml.MapSlice `yaml:"bonds"`
}

const (
	privateKeyHexLen = 2 * keys.PrivateKeySize
	ethAddressHexLen = 2 * revaddr.EthAddressLength
)

// DistributionFromYAML parses
//
//	wallets:
//	  <private key hex | REV address | ETH address hex>: <balance>
//	bonds:
//	  <private key hex | public key hex>: <stake>
func DistributionFromYAML(data []byte) (*Distribution, error) {
	var src distributionYAMLAble
	if err := yaml.Unmarshal(data, &src); err != nil {
		return nil, fmt.Errorf("can't parse distribution YAML: %w", err)
	}
	ret := &Distribution{
		wallets: make([]Wallet, 0, len(src.Wallets)),
		bonds:   make([]BondEntry, 0, len(src.Bonds)),
	}
	for i, item := range src.Wallets {
		key, amount, err := keyAndAmount(item)
		if err != nil {
			return nil, fmt.Errorf("wallets #%d: %w", i, err)
		}
		w, err := walletFromKeyString(key, amount)
		if err != nil {
			return nil, fmt.Errorf("wallets #%d: %w", i, err)
		}
		ret.wallets = append(ret.wallets, w)
	}
	if _, err := WalletLines(ret.wallets); err != nil {
		return nil, err
	}
	for i, item := range src.Bonds {
		key, amount, err := keyAndAmount(item)
		if err != nil {
			return nil, fmt.Errorf("bonds #%d: %w", i, err)
		}
		pub, err := publicKeyFromKeyString(key)
		if err != nil {
			return nil, fmt.Errorf("bonds #%d: %w", i, err)
		}
		ret.bonds = append(ret.bonds, BondEntry{PublicKey: pub, Stake: amount})
	}
	if _, err := BondsFileLines(ret.bonds); err != nil {
		return nil, err
	}
	return ret, nil
}

func keyAndAmount(item yaml.MapItem) (string, int64, error) {
	key, ok := item.Key.(string)
	if !ok {
		return "", 0, fmt.Errorf("key '%v' must be a string, quote it", item.Key)
	}
	var amount int64
	switch v := item.Value.(type) {
	case int:
		amount = int64(v)
	case int64:
		amount = v
	case uint64:
		if v > math.MaxInt64 {
			return "", 0, fmt.Errorf("%w: %d is too big", ErrInvalidBalance, v)
		}
		amount = int64(v)
	default:
		return "", 0, fmt.Errorf("%w: '%v' for '%s' is not an integer", ErrInvalidBalance, item.Value, key)
	}
	return key, amount, nil
}

func walletFromKeyString(s string, balance int64) (Wallet, error) {
	s = keys.TrimHex(s)
	switch len(s) {
	case privateKeyHexLen:
		k, err := keys.FromHex(s)
		if err != nil {
			return Wallet{}, err
		}
		return LedgerEntry{Key: k, Balance: balance}.Wallet(), nil
	case ethAddressHexLen:
		addr, err := revaddr.FromEthAddressHex(s)
		if err != nil {
			return Wallet{}, err
		}
		return Wallet{Address: addr, Balance: balance}, nil
	}
	addr, err := revaddr.Parse(s)
	if err != nil {
		return Wallet{}, err
	}
	return Wallet{Address: addr, Balance: balance}, nil
}

func publicKeyFromKeyString(s string) (*keys.PublicKey, error) {
	s = keys.TrimHex(s)
	if len(s) == privateKeyHexLen {
		k, err := keys.FromHex(s)
		if err != nil {
			return nil, err
		}
		return k.PublicKey(), nil
	}
	return keys.PublicKeyFromHex(s)
}

func (d *Distribution) Wallets() []Wallet {
	return d.wallets
}

func (d *Distribution) Bonds() []BondEntry {
	return d.bonds
}

func (d *Distribution) WalletsFileLines() ([]string, error) {
	return WalletLines(d.wallets)
}

func (d *Distribution) BondsFileLines() ([]string, error) {
	return BondsFileLines(d.bonds)
}

func (d *Distribution) TotalBalance() (int64, error) {
	return TotalBalance(d.wallets)
}

func (d *Distribution) Lines(prefix ...string) *lines.Lines {
	ret := lines.New(prefix...)
	ret.Add("wallets (%d):", len(d.wallets))
	for _, w := range d.wallets {
		ret.Add("    %s: %s", w.Address, util.Th(w.Balance))
	}
	if total, err := d.TotalBalance(); err == nil {
		ret.Add("total balance: %s", util.Th(total))
	}
	ret.Add("bonds (%d):", len(d.bonds))
	for _, b := range d.bonds {
		ret.Add("    %s..: %s", b.PublicKey.Hex()[:16], util.Th(b.Stake))
	}
	return ret
}
