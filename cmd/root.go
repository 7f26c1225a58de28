// Package cmd holds the lpdemo command line.
package cmd

import (
	goflag "flag"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"q.log/lpdemo/config"
)

const rootLong = `Classical linear optimization demonstrations.

Problems are read from YAML or JSON files (and MPS when built with GLPK).
Solver settings come from flags, LPDEMO_* environment variables or --config.`

// NewRootCommand returns the lpdemo command with every subcommand attached.
// Output goes to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:           "lpdemo",
		Short:         "Solve small linear programs and related problems",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)

	if err := config.BindFlags(cmd.PersistentFlags(), v); err != nil {
		// Only fails if a flag name is missing, which is a programming error.
		panic(err)
	}
	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	cmd.AddCommand(
		NewCommandSimplex("simplex", v),
		NewCommandGraphical("graphical", v),
		NewCommandAssignment("assignment"),
		NewCommandTransport("transport"),
	)
	return cmd
}

// loadConfig resolves solver settings for a subcommand.
func loadConfig(cmd *cobra.Command, v *viper.Viper) (*config.Config, error) {
	return config.Load(v, cmd.Flags())
}
