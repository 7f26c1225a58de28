package cmd

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"q.log/lpdemo/instance"
	"q.log/lpdemo/model"
	"q.log/lpdemo/simplex"
)

const simplexLong = `Solve a linear program with the tableau simplex method.

The model must be in "A·x <= b, x >= 0" form with b >= 0 after >= and =
rows are rewritten; problems that need a Phase 1 are rejected.`

type SimplexOptions struct {
	Path      string
	ShowModel bool
	Output    string

	Model *model.Model
	Opts  []simplex.Option

	Out io.Writer
}

func NewCommandSimplex(name string, v *viper.Viper) *cobra.Command {
	o := &SimplexOptions{}

	cmd := &cobra.Command{
		Use:   name + " FILE",
		Short: "Solve a linear program with the simplex method",
		Long:  simplexLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, v, args); err != nil {
				return err
			}
			return o.Run()
		},
	}
	cmd.Flags().BoolVar(&o.ShowModel, "show-model", false, "print the model before solving")
	cmd.Flags().StringVarP(&o.Output, "output", "o", "", "output format: text, json or yaml")

	return cmd
}

func (o *SimplexOptions) Complete(cmd *cobra.Command, v *viper.Viper, args []string) error {
	o.Path = args[0]
	o.Out = cmd.OutOrStdout()
	switch o.Output {
	case "", "text", "json", "yaml":
	default:
		return errors.Wrapf(ErrUnknownOutput, "%q", o.Output)
	}

	cfg, err := loadConfig(cmd, v)
	if err != nil {
		return err
	}
	o.Opts = cfg.SolverOptions()

	o.Model, err = instance.ReadFile(o.Path)
	return err
}

func (o *SimplexOptions) Run() error {
	if o.ShowModel {
		o.Model.Format(o.Out)
	}

	sol, err := simplex.Solve(o.Model, o.Opts...)
	if sol == nil {
		return errors.Wrap(err, o.Path)
	}

	if perr := printSolution(o.Out, newSolutionReport(o.Path, o.Model, sol), o.Output); perr != nil {
		return perr
	}
	return errors.Wrap(err, o.Path)
}
