package gen_cmd

import (
	"github.com/rhonix/rboot/keys"
	"github.com/rhonix/rboot/rboot/glb"
	"github.com/rhonix/rboot/revaddr"
	"github.com/rhonix/rboot/util/lines"
	"github.com/spf13/cobra"
)

func genKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key",
		Args:  cobra.NoArgs,
		Short: "generates secp256k1 private key, public key, ETH address and REV address",
		Run:   runGenKeyCmd,
	}
}

func runGenKeyCmd(_ *cobra.Command, _ []string) {
	glb.Infof("DISCLAIMER: USE AT YOUR OWN RISK!! This program generates private key based on system randomness and on the entropy entered by the user")
	privateKey := glb.AskEntropyGenPrivateKey("please enter random symbols")
	glb.Infof("------>")
	glb.Infof("%s", keyLines(privateKey).String())
}

func keyLines(privateKey *keys.PrivateKey) *lines.Lines {
	pub := privateKey.PublicKey()
	return lines.New().
		Add("Priv: %s", privateKey.Hex()).
		Add("Pub: %s", pub.Hex()).
		Add("ETH: %s", revaddr.EthAddressFromPublicKey(pub).String()).
		Add("REV: %s", revaddr.FromPublicKey(pub).String())
}
