package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"q.log/lpdemo/graphical"
	"q.log/lpdemo/instance"
	"q.log/lpdemo/model"
)

type GraphicalOptions struct {
	Path     string
	PlotPath string
	Epsilon  float64

	Model *model.Model
	Out   io.Writer
}

func NewCommandGraphical(name string, v *viper.Viper) *cobra.Command {
	o := &GraphicalOptions{}

	cmd := &cobra.Command{
		Use:   name + " FILE",
		Short: "Solve a two-variable linear program by vertex enumeration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, v, args); err != nil {
				return err
			}
			return o.Run()
		},
	}
	cmd.Flags().StringVar(&o.PlotPath, "plot", "", "write the feasible region to this image (.png, .svg, .pdf)")

	return cmd
}

// Complete takes the zero tolerance from the shared solver settings
// (flag, LPDEMO_EPSILON or --config).
func (o *GraphicalOptions) Complete(cmd *cobra.Command, v *viper.Viper, args []string) error {
	o.Path = args[0]
	o.Out = cmd.OutOrStdout()

	cfg, err := loadConfig(cmd, v)
	if err != nil {
		return err
	}
	o.Epsilon = cfg.Epsilon

	o.Model, err = instance.ReadFile(o.Path)
	return err
}

func (o *GraphicalOptions) Run() error {
	res, err := graphical.Solve(o.Model, o.Epsilon)
	if err != nil {
		return err
	}

	fmt.Fprintln(o.Out, "vertices:")
	for i, p := range res.Vertices {
		fmt.Fprintf(o.Out, "  (%g, %g)  z = %g\n", p.X, p.Y, res.Values[i])
	}
	fmt.Fprintf(o.Out, "%s: (%g, %g), z* = %g\n", res.Sense, res.Best.X, res.Best.Y, res.BestValue)

	if o.PlotPath != "" {
		if err := graphical.Plot(res, o.PlotPath); err != nil {
			return err
		}
		fmt.Fprintf(o.Out, "plot written to %s\n", o.PlotPath)
	}
	return nil
}
