// Command calxvec writes the addition/subtraction test vector corpus.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebcase/calxvec/config"
	"github.com/calebcase/calxvec/decimal"
	"github.com/calebcase/calxvec/vector"
	"github.com/calebcase/calxvec/verify"
)

type options struct {
	config    string
	precision uint32
	workers   int
	verbose   bool
}

func newRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "calxvec",
		Short: "Generate addition/subtraction test vectors",
		Long: `calxvec writes a deterministic corpus of decimal addition and subtraction
results to stdout, one canonical fixed point value per line.

Run without arguments to generate the corpus.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         o.generate,
	}

	root.PersistentFlags().StringVar(&o.config, "config", "", "yaml configuration file")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the corpus to stdout",
		Args:  cobra.NoArgs,
		RunE:  o.generate,
	}

	for _, cmd := range []*cobra.Command{root, generateCmd} {
		cmd.Flags().Uint32Var(&o.precision, "precision", decimal.DefaultPrecision, "significant digits used for arithmetic")
		cmd.Flags().IntVar(&o.workers, "workers", 1, "fraction cells rendered concurrently")
	}

	verifyCmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Check a corpus read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  o.verify,
	}

	root.AddCommand(generateCmd, verifyCmd)

	return root
}

// load returns the configuration with explicitly set flags applied over it.
func (o *options) load(cmd *cobra.Command) (cfg config.Config, err error) {
	cfg = config.Default()

	if o.config != "" {
		cfg, err = config.Load(o.config)
		if err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()

	if flags.Changed("precision") {
		cfg.Precision = o.precision
	}

	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}

	if o.verbose {
		cfg.Log.Level = "debug"
	}

	return cfg, cfg.Validate()
}

func (o *options) generate(cmd *cobra.Command, args []string) (err error) {
	cfg, err := o.load(cmd)
	if err != nil {
		return err
	}

	logger, err := cfg.Log.Logger()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	c, err := decimal.NewContext(cfg.Precision)
	if err != nil {
		return err
	}

	g, err := vector.New(c,
		vector.WithWorkers(cfg.Workers),
		vector.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	logger.Debug("generating corpus",
		zap.Uint32("precision", cfg.Precision),
		zap.Int("workers", cfg.Workers),
	)

	w := bufio.NewWriter(cmd.OutOrStdout())

	err = g.Corpus(cmd.Context(), w)

	// Lines written before a failure are kept.
	flushErr := w.Flush()
	if err != nil {
		return err
	}

	return flushErr
}

func (o *options) verify(cmd *cobra.Command, args []string) (err error) {
	var r io.Reader = cmd.InOrStdin()

	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer func() {
			_ = f.Close()
		}()

		r = f
	}

	rep, err := verify.CheckCorpus(r)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d lines (%d whole)\n", rep.Lines, rep.Whole)

	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
