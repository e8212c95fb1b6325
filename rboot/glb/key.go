package glb

import (
	"crypto/rand"
	"os"
	"strings"

	"github.com/lunfardo314/unitrie/common"
	"github.com/rhonix/rboot/keys"
	"github.com/rhonix/rboot/revaddr"
	"github.com/spf13/viper"
	"golang.org/x/crypto/ssh/terminal"
)

const MinimumSeedLength = 10

// GetPrivateKey returns key from the 'private_key' flag, env or profile
func GetPrivateKey() (*keys.PrivateKey, bool) {
	privateKeyStr := viper.GetString("private_key")
	if privateKeyStr == "" {
		return nil, false
	}
	ret, err := keys.FromHex(privateKeyStr)
	AssertNoError(err)
	return ret, true
}

func MustGetPrivateKey() *keys.PrivateKey {
	ret, ok := GetPrivateKey()
	Assertf(ok, "private key not specified")
	return ret
}

func AddressString() string {
	if pk, ok := GetPrivateKey(); ok {
		return revaddr.FromPrivateKey(pk).String()
	}
	return "(unknown)"
}

// AskEntropyGenPrivateKey mixes user entered symbols with system randomness
func AskEntropyGenPrivateKey(msg string, minSeedLength ...int) *keys.PrivateKey {
	seedLen := MinimumSeedLength
	if len(minSeedLength) > 0 && minSeedLength[0] > MinimumSeedLength {
		seedLen = minSeedLength[0]
	}

	Printf(msg+" (minimum %d symbols): ", seedLen)
	userSeed, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	AssertNoError(err)
	Printf("\n")
	Assertf(len(strings.TrimSpace(string(userSeed))) >= seedLen, "must be at least %d seed symbols", seedLen)

	return genPrivateKey(userSeed)
}

func genPrivateKey(userSeed []byte) *keys.PrivateKey {
	var rndBytes [32]byte
	n, err := rand.Read(rndBytes[:])
	AssertNoError(err)
	Assertf(n == 32, "error while generating random bytes")

	ret, err := keys.FromSeed(common.Concat(userSeed, rndBytes[:]))
	AssertNoError(err)
	return ret
}
