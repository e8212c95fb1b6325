package global

const (
	// DefaultWalletsFileName is the genesis wallets file read by the node at bootstrap
	DefaultWalletsFileName = "wallets.txt"
	// DefaultBondsFileName is the genesis validator bonds file
	DefaultBondsFileName = "bonds.txt"
	// DefaultDistributionFileName is the YAML source of both files
	DefaultDistributionFileName = "rboot.genesis.yaml"
	// DefaultProfileName is the viper config profile, without extension
	DefaultProfileName = "rboot"
)
