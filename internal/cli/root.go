// Package cli implements the evseq command-line tool.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/arloliu/evseq/internal/config"
)

// Version is set at build time.
var Version = "0.1.0"

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
}

// NewRootCommand builds the evseq command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.NewViper(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "evseq",
		Short: "Compose, aggregate and convert event-sequence datasets",
		Long: `evseq prepares event-sequence datasets for sequence models.

Datasets are read from and written to binary archives, or JSON documents
when the file name ends in .json.

Example:
  evseq stitch --a train.evs --b extra.evs --mode feature --out out.evs
  evseq aggregate --in out.evs --dt 0.5 --policy clamp --out binned.evs
  evseq convert --in binned.evs --out binned.json`,
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "YAML config file")
	flags.Uint64("seed", 0, "random seed, 0 draws a fresh one (or set EVSEQ_SEED)")
	flags.String("compression", "zstd", "archive compression: none, zstd, s2 or lz4")
	flags.String("log-level", "info", "log level")
	flags.String("log-format", "console", "log format: json or console")
	flags.Int("progress-every", 1000, "sequences between debug progress lines")

	for key, flag := range map[string]string{
		"seed":           "seed",
		"compression":    "compression",
		"log_level":      "log-level",
		"log_format":     "log-format",
		"progress_every": "progress-every",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		a.newComposeCommand("stitch", "Append a paired sequence of B after every sequence of A"),
		a.newComposeCommand("superpose", "Merge a paired sequence of B into every sequence of A"),
		a.newAggregateCommand(),
		a.newInfoCommand(),
		a.newConvertCommand(),
	)

	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) setup(*cobra.Command, []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger

	return nil
}
