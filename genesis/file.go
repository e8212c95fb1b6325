package genesis

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// WriteLines writes newline-terminated lines. Existing file is replaced only with overwrite == true
func WriteLines(fs afero.Fs, path string, lns []string, overwrite bool) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return err
	}
	if exists && !overwrite {
		return fmt.Errorf("file '%s' already exists", path)
	}
	var buf strings.Builder
	for _, ln := range lns {
		buf.WriteString(ln)
		buf.WriteString("\n")
	}
	return afero.WriteFile(fs, path, []byte(buf.String()), 0644)
}

// ReadLines returns non-empty lines of the file, trimmed
func ReadLines(fs afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	ret := make([]string, 0)
	for _, ln := range strings.Split(string(data), "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			ret = append(ret, ln)
		}
	}
	return ret, nil
}

func ReadWalletsFile(fs afero.Fs, path string) ([]Wallet, error) {
	lns, err := ReadLines(fs, path)
	if err != nil {
		return nil, err
	}
	ret := make([]Wallet, len(lns))
	for i, ln := range lns {
		if ret[i], err = ParseWalletLine(ln); err != nil {
			return nil, fmt.Errorf("%s, line %d: %w", path, i+1, err)
		}
	}
	return ret, nil
}

func ReadBondsFile(fs afero.Fs, path string) ([]BondEntry, error) {
	lns, err := ReadLines(fs, path)
	if err != nil {
		return nil, err
	}
	ret := make([]BondEntry, len(lns))
	for i, ln := range lns {
		if ret[i], err = ParseBondLine(ln); err != nil {
			return nil, fmt.Errorf("%s, line %d: %w", path, i+1, err)
		}
	}
	return ret, nil
}

func ReadDistributionFile(fs afero.Fs, path string) (*Distribution, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("distribution file '%s' not found", path)
		}
		return nil, err
	}
	return DistributionFromYAML(data)
}
