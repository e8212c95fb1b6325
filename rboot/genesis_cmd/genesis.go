package genesis_cmd

import (
	"fmt"
	"os"

	"github.com/rhonix/rboot/genesis"
	"github.com/rhonix/rboot/global"
	"github.com/rhonix/rboot/rboot/glb"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func Init() *cobra.Command {
	genesisCmd := &cobra.Command{
		Use:   "genesis [<distribution.yaml>]",
		Args:  cobra.MaximumNArgs(1),
		Short: "creates genesis wallets and bonds files out of the distribution YAML",
		Long: fmt.Sprintf(`creates genesis wallets and bonds files out of the distribution YAML.
Default distribution file is '%s'. Each wallet line has form '<REV address>,<balance>,0',
each bond line has form '<public key> <stake>'`, global.DefaultDistributionFileName),
		Run: runGenesisCmd,
	}
	genesisCmd.Flags().String("wallets", global.DefaultWalletsFileName, "output wallets file")
	glb.AssertNoError(viper.BindPFlag("genesis.wallets_file", genesisCmd.Flags().Lookup("wallets")))

	genesisCmd.Flags().String("bonds", global.DefaultBondsFileName, "output bonds file")
	glb.AssertNoError(viper.BindPFlag("genesis.bonds_file", genesisCmd.Flags().Lookup("bonds")))

	return genesisCmd
}

func runGenesisCmd(_ *cobra.Command, args []string) {
	distributionFile := viper.GetString("genesis.distribution")
	if len(args) > 0 {
		distributionFile = args[0]
	}
	if distributionFile == "" {
		distributionFile = global.DefaultDistributionFileName
	}
	walletsFile := viper.GetString("genesis.wallets_file")
	bondsFile := viper.GetString("genesis.bonds_file")

	fs := afero.NewOsFs()
	d, err := genesis.ReadDistributionFile(fs, distributionFile)
	glb.AssertNoError(err)

	glb.Infof("genesis distribution from '%s':", distributionFile)
	glb.Infof("%s", d.Lines("     ").String())

	overwrite := false
	for _, fname := range []string{walletsFile, bondsFile} {
		exists, err := afero.Exists(fs, fname)
		glb.AssertNoError(err)
		if !exists {
			continue
		}
		if !glb.YesNoPrompt(fmt.Sprintf("file '%s' already exists. Overwrite?", fname), false) {
			os.Exit(0)
		}
		overwrite = true
	}
	if !glb.YesNoPrompt(fmt.Sprintf("Write '%s' and '%s'?", walletsFile, bondsFile), true) {
		glb.Fatalf("exit: genesis files weren't created")
	}
	glb.AssertNoError(writeGenesisFiles(fs, d, walletsFile, bondsFile, overwrite, glb.Log()))
	glb.Infof("Success. Genesis wallets have been stored in '%s', bonds in '%s'", walletsFile, bondsFile)
}

// writeGenesisFiles validates both files before writing any. When bonds file can't be
// written, the just written wallets file is removed
func writeGenesisFiles(fs afero.Fs, d *genesis.Distribution, walletsFile, bondsFile string, overwrite bool, log *zap.SugaredLogger) error {
	walletLines, err := d.WalletsFileLines()
	if err != nil {
		return err
	}
	bondLines, err := d.BondsFileLines()
	if err != nil {
		return err
	}
	if err = genesis.WriteLines(fs, walletsFile, walletLines, overwrite); err != nil {
		return err
	}
	log.Debugf("%d wallet lines written to %s", len(walletLines), walletsFile)
	if len(bondLines) == 0 {
		log.Warnf("no bonds in the distribution, '%s' will be empty", bondsFile)
	}
	if err = genesis.WriteLines(fs, bondsFile, bondLines, overwrite); err != nil {
		if errRemove := fs.Remove(walletsFile); errRemove != nil {
			log.Errorf("failed to remove '%s': %v", walletsFile, errRemove)
		}
		return err
	}
	log.Debugf("%d bond lines written to %s", len(bondLines), bondsFile)
	return nil
}
