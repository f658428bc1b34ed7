package cmd

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/oy3o/shuffle"
	"github.com/spf13/cobra"
)

// openInput returns the file named by args[0], or stdin.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(args[0])
}

// records yields one key/value pair per non-empty "key<TAB>value" line. A
// malformed line is reported through errp and ends the sequence.
func records(r io.Reader, errp *error) iter.Seq[shuffle.Pair[string, string]] {
	return func(yield func(shuffle.Pair[string, string]) bool) {
		sc := bufio.NewScanner(r)
		line := 0
		for sc.Scan() {
			line++
			text := sc.Text()
			if text == "" {
				continue
			}
			k, v, ok := strings.Cut(text, "\t")
			if !ok {
				*errp = fmt.Errorf("line %d: missing tab separator", line)
				return
			}
			if !yield(shuffle.PairOf(k, v)) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			*errp = fmt.Errorf("read input: %w", err)
		}
	}
}
