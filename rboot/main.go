package main

import (
	"os"

	"github.com/rhonix/rboot/global"
	"github.com/rhonix/rboot/rboot/addr_cmd"
	"github.com/rhonix/rboot/rboot/dag_cmd"
	"github.com/rhonix/rboot/rboot/gen_cmd"
	"github.com/rhonix/rboot/rboot/genesis_cmd"
	"github.com/rhonix/rboot/rboot/glb"
	"github.com/rhonix/rboot/rboot/init_cmd"
	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

func init() {
	initRoot()
}

func initRoot() {
	rootCmd = &cobra.Command{
		Use:   "rboot",
		Short: "bootstrap tooling for a node: keys, REV addresses and genesis files",
		Long: `rboot is a CLI tool for bootstrapping a network.
It provides:
      - secp256k1 key generation and REV address derivation
      - genesis wallets and bonds files out of the YAML distribution
      - libp2p identity of the bootstrap node
      - inspection of block DAG edge lists
`,
		Version: global.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			glb.ReadInConfig()
			glb.Verbosef("%s", global.BannerString())
			glb.Verbosef("profile private key corresponds to address %s", glb.AddressString())
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	glb.InitPersistentFlags(rootCmd)

	rootCmd.AddCommand(
		init_cmd.Init(),
		gen_cmd.Init(),
		addr_cmd.Init(),
		genesis_cmd.Init(),
		dag_cmd.Init(),
	)
	rootCmd.InitDefaultHelpCmd()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
