package cli

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/evseq/aggregate"
)

func (a *app) newAggregateCommand() *cobra.Command {
	var (
		in, out            string
		dt                 float64
		policyName, assign string
	)

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Convert events into fixed-width binned counts",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			policy, err := aggregate.ParseBinPolicy(policyName)
			if err != nil {
				return err
			}
			assignment, err := aggregate.ParseBinAssignment(assign)
			if err != nil {
				return err
			}
			ds, err := loadDataset(in)
			if err != nil {
				return err
			}

			result, err := aggregate.Aggregate(ds, dt,
				aggregate.WithLogger(a.logger),
				aggregate.WithBinPolicy(policy),
				aggregate.WithBinAssignment(assignment),
				aggregate.WithProgressEvery(a.cfg.ProgressEvery),
			)
			if err != nil {
				return err
			}

			return a.saveDataset(out, result)
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "input dataset")
	cmd.Flags().StringVar(&out, "out", "", "output dataset")
	cmd.Flags().Float64Var(&dt, "dt", 1, "bin width")
	cmd.Flags().StringVar(&policyName, "policy", "raise", "out-of-range bins: raise, clamp or drop")
	cmd.Flags().StringVar(&assign, "assign", "round", "bin assignment: round or floor")

	return cmd
}
