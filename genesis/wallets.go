package genesis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rhonix/rboot/keys"
	"github.com/rhonix/rboot/revaddr"
)

// BootstrapNonce is the nonce of every wallet in the genesis wallets file
const BootstrapNonce = 0

var (
	ErrInvalidBalance = errors.New("invalid balance")
	ErrWrongFormat    = errors.New("wrong line format")
)

type (
	// LedgerEntry is a private key with its initial balance. Nonce is implicitly BootstrapNonce
	LedgerEntry struct {
		Key     *keys.PrivateKey
		Balance int64
	}

	// Wallet is a line of the wallets file with the address already derived
	Wallet struct {
		Address revaddr.Address
		Balance int64
	}
)

func (e LedgerEntry) Wallet() Wallet {
	return Wallet{
		Address: revaddr.FromPrivateKey(e.Key),
		Balance: e.Balance,
	}
}

// Line is '<address>,<balance>,<nonce>'
func (w Wallet) Line() string {
	return fmt.Sprintf("%s,%d,%d", w.Address, w.Balance, BootstrapNonce)
}

func (w Wallet) String() string {
	return w.Line()
}

func checkBalance(i int, balance int64) error {
	if balance < 0 {
		return fmt.Errorf("%w: entry #%d has negative balance %d", ErrInvalidBalance, i, balance)
	}
	return nil
}

// WalletsFileLines renders lines of the genesis wallets file in the order of entries.
// Entries are neither sorted nor deduplicated. Any negative balance fails the whole call
func WalletsFileLines(entries []LedgerEntry) ([]string, error) {
	for i := range entries {
		if err := checkBalance(i, entries[i].Balance); err != nil {
			return nil, err
		}
		if !entries[i].Key.IsValid() {
			return nil, fmt.Errorf("%w: entry #%d has no valid private key", keys.ErrInvalidKey, i)
		}
	}
	ret := make([]string, len(entries))
	for i := range entries {
		ret[i] = entries[i].Wallet().Line()
	}
	return ret, nil
}

// WalletLines is WalletsFileLines for already resolved addresses
func WalletLines(wallets []Wallet) ([]string, error) {
	for i := range wallets {
		if err := checkBalance(i, wallets[i].Balance); err != nil {
			return nil, err
		}
	}
	ret := make([]string, len(wallets))
	for i := range wallets {
		ret[i] = wallets[i].Line()
	}
	return ret, nil
}

// ParseWalletLine is the inverse of Wallet.Line. Address checksum is verified
func ParseWalletLine(line string) (Wallet, error) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) != 3 {
		return Wallet{}, fmt.Errorf("%w: expected '<address>,<balance>,<nonce>', got '%s'", ErrWrongFormat, line)
	}
	addr, err := revaddr.Parse(parts[0])
	if err != nil {
		return Wallet{}, err
	}
	balance, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Wallet{}, fmt.Errorf("%w: '%s': %v", ErrInvalidBalance, parts[1], err)
	}
	if balance < 0 {
		return Wallet{}, fmt.Errorf("%w: negative balance %d", ErrInvalidBalance, balance)
	}
	if parts[2] != strconv.Itoa(BootstrapNonce) {
		return Wallet{}, fmt.Errorf("%w: nonce must be %d, got '%s'", ErrWrongFormat, BootstrapNonce, parts[2])
	}
	return Wallet{Address: addr, Balance: balance}, nil
}

func TotalBalance(wallets []Wallet) (int64, error) {
	var ret int64
	for i, w := range wallets {
		if err := checkBalance(i, w.Balance); err != nil {
			return 0, err
		}
		if ret+w.Balance < ret {
			return 0, fmt.Errorf("%w: total balance overflows at entry #%d", ErrInvalidBalance, i)
		}
		ret += w.Balance
	}
	return ret, nil
}
