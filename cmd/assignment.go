package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"q.log/lpdemo/assignment"
	"q.log/lpdemo/instance"
)

func NewCommandAssignment(name string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " FILE",
		Short: "Find a minimum-cost assignment by exhaustive search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := instance.ReadAssignment(args[0])
			if err != nil {
				return err
			}
			res, err := assignment.Solve(doc.Cost)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "best assignment (worker -> task):")
			for i, j := range res.Perm {
				fmt.Fprintf(out, "  %d -> %d\n", i, j)
			}
			fmt.Fprintf(out, "total cost: %g\n", res.Cost)
			return nil
		},
	}
}
