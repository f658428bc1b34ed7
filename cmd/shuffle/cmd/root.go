package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/oy3o/shuffle"
	"github.com/oy3o/shuffle/codecs"
	"github.com/oy3o/shuffle/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// app is the state shared by subcommands after PersistentPreRunE.
type app struct {
	cfg      config.Config
	registry *prometheus.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "shuffle",
		Short: "Encode and group key/value records the way a shuffle does",
		Long: `shuffle reads tab-separated key/value lines, encodes them with the
configured codecs and, for "group", groups them by encoded key.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.finish()
		},
	}

	root.PersistentFlags().StringP("config", "c", "", "YAML config file")
	root.PersistentFlags().String("spill-dir", "", "group through an on-disk spill store under this directory")
	root.PersistentFlags().Bool("metrics", false, "log shuffle counters on exit")

	root.AddCommand(newEncodeCmd(a), newGroupCmd(a))
	return root
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if dir, _ := cmd.Flags().GetString("spill-dir"); dir != "" {
		cfg.Group.Spill = true
		cfg.Group.Dir = dir
	}
	if on, _ := cmd.Flags().GetBool("metrics"); on {
		cfg.Metrics = true
	}
	a.cfg = cfg

	if err := initLogger(&cfg, cmd.ErrOrStderr()); err != nil {
		return err
	}

	if cfg.Metrics {
		a.registry = prometheus.NewRegistry()
		if _, err := shuffle.RegisterMetrics(a.registry); err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}
	}
	return nil
}

// initLogger installs the global slog.Logger (JSON or text).
func initLogger(cfg *config.Config, w io.Writer) error {
	level, err := cfg.Logger.SlogLevel()
	if err != nil {
		return err
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Logger.JSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)
	return nil
}

func (a *app) finish() error {
	if a.registry == nil {
		return nil
	}
	defer shuffle.UnregisterMetrics()

	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{"name", mf.GetName(), "value", m.GetCounter().GetValue()}
			for _, l := range m.GetLabel() {
				attrs = append(attrs, l.GetName(), l.GetValue())
			}
			slog.Info("metric", attrs...)
		}
	}
	return nil
}

// stringCodecs builds the key and value codecs from config. release frees
// whatever they hold.
func (a *app) stringCodecs() (keys, values shuffle.Codec[string], release func(), err error) {
	keys, err = codecs.String(a.cfg.Codecs.Key, codecs.CompressNone)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("key codec: %w", err)
	}
	values, err = codecs.String(a.cfg.Codecs.Value, a.cfg.Codecs.Compress)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("value codec: %w", err)
	}
	release = func() {
		if c, ok := values.(io.Closer); ok {
			if err := c.Close(); err != nil {
				slog.Warn("close value codec", "err", err)
			}
		}
	}
	return keys, values, release, nil
}
