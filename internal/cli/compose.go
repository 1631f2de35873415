package cli

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/evseq/compose"
	"github.com/arloliu/evseq/dataset"
	"github.com/arloliu/evseq/errs"
)

func (a *app) newComposeCommand(name, short string) *cobra.Command {
	var (
		pathA, pathB, out, modeName string
	)

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			dsA, err := loadDataset(pathA)
			if err != nil {
				return err
			}
			dsB, err := loadDataset(pathB)
			if err != nil {
				return err
			}

			c, err := compose.New(a.composerOptions()...)
			if err != nil {
				return err
			}

			var result *dataset.Dataset
			if name == "stitch" {
				result, err = c.StitchByName(dsA, dsB, modeName)
			} else {
				result, err = c.SuperposeByName(dsA, dsB, modeName)
			}
			// recovered faults are already logged and A is written unchanged
			if err != nil && !errs.IsRecoverable(err) {
				return err
			}

			return a.saveDataset(out, result)
		},
	}

	cmd.Flags().StringVar(&pathA, "a", "", "first dataset")
	cmd.Flags().StringVar(&pathB, "b", "", "second dataset")
	cmd.Flags().StringVar(&modeName, "mode", "random", "pairing mode: random or feature")
	cmd.Flags().StringVar(&out, "out", "", "output dataset")

	return cmd
}

func (a *app) composerOptions() []compose.Option {
	opts := []compose.Option{
		compose.WithLogger(a.logger),
		compose.WithProgressEvery(a.cfg.ProgressEvery),
	}
	if a.cfg.Seed != 0 {
		opts = append(opts, compose.WithSeed(a.cfg.Seed))
	}

	return opts
}
