package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/oy3o/shuffle"
	"github.com/oy3o/shuffle/group"
	"github.com/spf13/cobra"
)

func newGroupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "group [file]",
		Short: "Group records by encoded key and print each key with its values",
		Long: `group encodes every record, groups the values by encoded key and
prints "key<TAB>v1,v2,..." per key, in encoded key byte order. Values travel
through the grouper as serialized lazy values and are decoded on output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			keys, values, closeCodecs, err := a.stringCodecs()
			if err != nil {
				return err
			}
			defer closeCodecs()

			g, err := a.newGrouper(values)
			if err != nil {
				return err
			}
			defer func() {
				if err := g.Close(); err != nil {
					slog.Warn("close grouper", "err", err)
				}
			}()

			to := shuffle.ToKeyBytesLazyValue[string, string]{Keys: keys, Values: values}
			n := 0
			var readErr error
			for rec := range records(in, &readErr) {
				p, err := to.Apply(rec)
				if err != nil {
					return err
				}
				wire, err := p.Value.MarshalBinary()
				if err != nil {
					return err
				}
				if err := g.Add(p.Key, wire); err != nil {
					return err
				}
				n++
			}
			if readErr != nil {
				return readErr
			}
			slog.Debug("records added", "count", n, "spill", a.cfg.Group.Spill)

			from := shuffle.FromKeyBytesGroupedLazyValues[string, string]{Keys: keys, Values: values}
			out := cmd.OutOrStdout()
			return g.Range(func(grp group.Group[string]) error {
				p, err := from.Apply(grp)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(out, "%s\t%s\n", p.Key, strings.Join(p.Value, ","))
				return err
			})
		},
	}
}

func (a *app) newGrouper(values shuffle.Codec[string]) (group.Grouper[string], error) {
	if !a.cfg.Group.Spill {
		return group.NewMemory(values), nil
	}
	s, err := group.NewSpill(values, group.SpillOptions{
		Dir:       a.cfg.Group.Dir,
		BatchSize: a.cfg.Group.BatchSize,
		Logger:    slog.Default().With("component", "spill"),
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}
