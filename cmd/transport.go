package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"q.log/lpdemo/instance"
	"q.log/lpdemo/transport"
)

func NewCommandTransport(name string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " FILE",
		Short: "Build a northwest-corner plan for a transportation problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := instance.ReadTransport(args[0])
			if err != nil {
				return err
			}
			plan, err := transport.NorthwestCorner(doc.Cost, doc.Supply, doc.Demand)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "plan:\n%v\n", mat.Formatted(plan.X, mat.Squeeze()))
			fmt.Fprintf(out, "total cost: %g\n", plan.Cost)
			if !plan.Balanced() {
				fmt.Fprintf(out, "unshipped supply: %v\nunmet demand: %v\n", plan.RemainingSupply, plan.RemainingDemand)
			}
			return nil
		},
	}
}
