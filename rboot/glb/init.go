package glb

import (
	"errors"
	"strings"
	"sync"

	"github.com/rhonix/rboot/global"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "RBOOT"

// InitPersistentFlags defines flags shared by all commands and binds them to the viper keys
func InitPersistentFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringP("config", "c", "", "profile name or path to the profile YAML (default is rboot.yaml)")
	AssertNoError(viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	AssertNoError(viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")))

	rootCmd.PersistentFlags().String("private_key", "", "secp256k1 private key in hexadecimal")
	AssertNoError(viper.BindPFlag("private_key", rootCmd.PersistentFlags().Lookup("private_key")))

	rootCmd.PersistentFlags().BoolP("force", "f", false, "bypass yes/no prompts with the default")
	AssertNoError(viper.BindPFlag("force", rootCmd.PersistentFlags().Lookup("force")))
}

// ReadInConfig reads profile and environment. Missing profile is not an error
func ReadInConfig() {
	configName := viper.GetString("config")
	switch {
	case configName == "":
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(global.DefaultProfileName)
	case strings.HasSuffix(configName, ".yaml") || strings.HasSuffix(configName, ".yml"):
		viper.SetConfigFile(configName)
	default:
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(configName)
	}
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err == nil {
		Verbosef("using profile: %s", viper.ConfigFileUsed())
		return
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		Verbosef("profile not found, using flags and environment only")
		return
	}
	AssertNoError(err)
}

var (
	logOnce sync.Once
	logger  *zap.SugaredLogger
)

// Log returns logger configured by 'log.level' and 'log.output'. Verbose mode means debug level
func Log() *zap.SugaredLogger {
	logOnce.Do(func() {
		level, err := global.ParseLogLevel(viper.GetString("log.level"))
		AssertNoError(err)
		if viper.GetBool("verbose") && level > zapcore.DebugLevel {
			level = zapcore.DebugLevel
		}
		logger, err = global.NewLogger("rboot", level, viper.GetStringSlice("log.output"), "")
		AssertNoError(err)
	})
	return logger
}
