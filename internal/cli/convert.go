package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) newConvertCommand() *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between the binary archive and JSON",
		Long:  "Convert reads --in and writes --out, choosing JSON for .json files and the binary archive otherwise.",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			ds, err := loadDataset(in)
			if err != nil {
				return err
			}
			if err := a.saveDataset(out, ds); err != nil {
				return err
			}
			a.logger.Info("dataset converted", zap.String("in", in), zap.String("out", out), zap.Int("sequences", ds.Len()))

			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input dataset")
	cmd.Flags().StringVar(&out, "out", "", "output dataset")

	return cmd
}
