package init_cmd

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/rhonix/rboot/genesis"
	"github.com/rhonix/rboot/global"
	"github.com/rhonix/rboot/keys"
	"github.com/rhonix/rboot/rboot/glb"
	"github.com/rhonix/rboot/revaddr"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	bootstrapBalance = 50_000_000_000_000
	bootstrapStake   = 1_000
)

func Init() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [<profile name>]",
		Args:  cobra.MaximumNArgs(1),
		Short: "creates config profile and default genesis distribution",
		Long: fmt.Sprintf(`creates config profile with the private key and the default genesis distribution file '%s'.
The private key is taken from --private_key or generated`, global.DefaultDistributionFileName),
		Run: runInitCmd,
	}
	return initCmd
}

func runInitCmd(_ *cobra.Command, args []string) {
	profileName := global.DefaultProfileName
	if len(args) > 0 {
		profileName = args[0]
	}
	profileFname := profileName + ".yaml"
	fs := afero.NewOsFs()

	for _, fname := range []string{profileFname, global.DefaultDistributionFileName} {
		exists, err := afero.Exists(fs, fname)
		glb.AssertNoError(err)
		if exists && !glb.YesNoPrompt(fmt.Sprintf("file '%s' already exists. Overwrite?", fname), false) {
			os.Exit(0)
		}
	}

	privateKey, ok := glb.GetPrivateKey()
	if !ok {
		glb.Infof("private key will be generated")
		privateKey = glb.AskEntropyGenPrivateKey("please enter random symbols")
	}

	viper.Set("private_key", privateKey.Hex())
	viper.Set("log.level", "info")
	viper.Set("genesis.distribution", global.DefaultDistributionFileName)
	glb.AssertNoError(viper.WriteConfigAs(profileFname))
	glb.Infof("profile has been stored in '%s'. Address: %s", profileFname, revaddr.FromPrivateKey(privateKey).String())

	data, err := defaultDistribution(privateKey)
	glb.AssertNoError(err)
	glb.AssertNoError(afero.WriteFile(fs, global.DefaultDistributionFileName, data, 0644))
	glb.Infof("default genesis distribution has been stored in '%s'", global.DefaultDistributionFileName)
}

// defaultDistribution funds the bootstrap address and bonds its key as the only validator
func defaultDistribution(privateKey *keys.PrivateKey) ([]byte, error) {
	var buf bytes.Buffer
	err := defaultDistributionTemplate.Execute(&buf, map[string]any{
		"Address":   revaddr.FromPrivateKey(privateKey).String(),
		"PublicKey": privateKey.PublicKey().Hex(),
		"Balance":   int64(bootstrapBalance),
		"Stake":     int64(bootstrapStake),
	})
	if err != nil {
		return nil, err
	}
	// must be loadable
	if _, err = genesis.DistributionFromYAML(buf.Bytes()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var defaultDistributionTemplate = template.Must(template.New("distribution").Parse(`# Genesis distribution consists of two ordered lists.
# 'wallets' maps private key, ETH address or REV address to the initial balance.
# 'bonds' maps private or public key of a validator to its stake.
# Keys must be quoted: unquoted hex may be read by YAML as a number.
# The default distribution assigns tokens to the bootstrap address and bonds the
# bootstrap key as the only validator
wallets:
  "{{.Address}}": {{.Balance}}
bonds:
  "{{.PublicKey}}": {{.Stake}}
`))
