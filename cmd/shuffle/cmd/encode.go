package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/oy3o/shuffle"
	"github.com/spf13/cobra"
)

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [file]",
		Short: "Print the encoded key and value of every record as hex",
		Args:  cobra.MaximumNArgs(1),
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

			to := shuffle.ToKeyBytesValueBytes[string, string]{Keys: keys, Values: values}
			out := cmd.OutOrStdout()
			var readErr error
			for rec := range records(in, &readErr) {
				p, err := to.Apply(rec)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\n", p.Key, hex.EncodeToString(p.Value))
			}
			return readErr
		},
	}
}
