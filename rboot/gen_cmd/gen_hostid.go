package gen_cmd

import (
	"github.com/rhonix/rboot/hostid"
	"github.com/rhonix/rboot/keys"
	"github.com/rhonix/rboot/rboot/glb"
	"github.com/rhonix/rboot/util/lines"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func genHostIDCmd() *cobra.Command {
	genHostIdCommand := &cobra.Command{
		Use:   "hostid",
		Args:  cobra.NoArgs,
		Short: "libp2p host ID and bootstrap multiaddress of the node key",
		Long: `makes libp2p host ID and bootstrap multiaddress of the node key.
The key is taken from the profile or from the --private_key flag. If it is not specified, a new key is generated`,
		Run: runGenHostIdCmd,
	}
	genHostIdCommand.Flags().String("host", "127.0.0.1", "IP address or DNS name of the bootstrap node")
	glb.AssertNoError(viper.BindPFlag("hostid.host", genHostIdCommand.Flags().Lookup("host")))

	genHostIdCommand.Flags().Int("port", hostid.DefaultPort, "protocol port of the bootstrap node")
	glb.AssertNoError(viper.BindPFlag("hostid.port", genHostIdCommand.Flags().Lookup("port")))

	return genHostIdCommand
}

func runGenHostIdCmd(_ *cobra.Command, _ []string) {
	privateKey, ok := glb.GetPrivateKey()
	if !ok {
		glb.Infof("DISCLAIMER: USE AT YOUR OWN RISK!! private key not specified, it will be generated based on system randomness and on the entropy entered by the user")
		privateKey = glb.AskEntropyGenPrivateKey("please enter random symbols")
		glb.Infof("libp2p host private key: %s", privateKey.Hex())
	}
	ln, err := hostIDLines(privateKey, viper.GetString("hostid.host"), viper.GetInt("hostid.port"))
	glb.AssertNoError(err)
	glb.Infof("------>")
	glb.Infof("%s", ln.String())
}

func hostIDLines(privateKey *keys.PrivateKey, host string, port int) (*lines.Lines, error) {
	hid, err := hostid.FromPrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	ma, err := hostid.BootstrapAddr(host, port, hid)
	if err != nil {
		return nil, err
	}
	ret := lines.New().
		Add("libp2p host ID: %s", hid.String()).
		Add("bootstrap: %s", ma.String())
	if !hostid.IsPublic(ma, true) {
		ret.Add("warning: %s is not routable outside of the host", host)
	}
	return ret, nil
}
