package addr_cmd

import (
	"fmt"

	"github.com/rhonix/rboot/keys"
	"github.com/rhonix/rboot/rboot/glb"
	"github.com/rhonix/rboot/revaddr"
	"github.com/spf13/cobra"
)

var (
	pubKeyStr  string
	ethAddrStr string
)

func Init() *cobra.Command {
	addrCmd := &cobra.Command{
		Use:   "addr [<private key hex>]",
		Args:  cobra.MaximumNArgs(1),
		Short: "derives REV address from private key, public key or ETH address",
		Long: `derives REV address from the private key given as argument, from --pub or from --eth.
Without arguments and flags the profile private key is used`,
		Run: runAddrCmd,
	}
	addrCmd.Flags().StringVar(&pubKeyStr, "pub", "", "secp256k1 public key in hexadecimal, compressed or uncompressed")
	addrCmd.Flags().StringVar(&ethAddrStr, "eth", "", "ETH address in hexadecimal")

	addrCmd.AddCommand(&cobra.Command{
		Use:   "check <address>",
		Args:  cobra.ExactArgs(1),
		Short: "validates REV address",
		Run:   runCheckCmd,
	})
	addrCmd.InitDefaultHelpCmd()
	return addrCmd
}

func runAddrCmd(_ *cobra.Command, args []string) {
	var privHex string
	if len(args) > 0 {
		privHex = args[0]
	}
	if privHex == "" && pubKeyStr == "" && ethAddrStr == "" {
		privHex = glb.MustGetPrivateKey().Hex()
	}
	addr, err := deriveAddress(privHex, pubKeyStr, ethAddrStr)
	glb.AssertNoError(err)
	glb.Infof("%s", addr.String())
}

func runCheckCmd(_ *cobra.Command, args []string) {
	addr, err := revaddr.Parse(args[0])
	glb.AssertNoError(err)
	hash, err := addr.Hash()
	glb.AssertNoError(err)
	glb.Infof("address %s is valid", addr.String())
	glb.Verbosef("key hash: %x", hash)
}

// deriveAddress expects exactly one source
func deriveAddress(privHex, pubHex, ethHex string) (revaddr.Address, error) {
	n := 0
	for _, s := range []string{privHex, pubHex, ethHex} {
		if s != "" {
			n++
		}
	}
	if n != 1 {
		return "", fmt.Errorf("exactly one of private key, --pub or --eth must be specified")
	}
	switch {
	case privHex != "":
		pk, err := keys.FromHex(privHex)
		if err != nil {
			return "", err
		}
		return revaddr.FromPrivateKey(pk), nil
	case pubHex != "":
		pub, err := keys.PublicKeyFromHex(pubHex)
		if err != nil {
			return "", err
		}
		return revaddr.FromPublicKey(pub), nil
	default:
		return revaddr.FromEthAddressHex(ethHex)
	}
}
