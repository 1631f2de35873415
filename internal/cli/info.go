package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/evseq/dataset"
)

func (a *app) newInfoCommand() *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print dataset statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := loadDataset(in)
			if err != nil {
				return err
			}
			dataset.LogStats(a.logger, ds)

			st := ds.Stats()
			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"types=%d sequences=%d events=[%d, %d] mean_events=%.2f event_feature_dim=%d seq_feature_dim=%d aggregated=%t fingerprint=%016x\n",
				st.NumTypes, st.NumSequences, st.MinEvents, st.MaxEvents, st.MeanEvents,
				st.EventFeatureDim, st.SeqFeatureDim, ds.IsAggregated(), ds.Fingerprint(),
			)

			return err
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input dataset")

	return cmd
}
