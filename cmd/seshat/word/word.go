package word

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/flarebyte/seshat-lexis/catalog"
	"github.com/spf13/cobra"
)

// Cmd implements `seshat word RANK`.
var Cmd = &cobra.Command{
	Use:           "word RANK",
	Short:         "Print the word at the given frequency rank",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		rank, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid rank: %q", args[0])
		}
		cat := catalog.Top()
		w, ok := catalog.Word[string](cat, rank)
		if !ok {
			return fmt.Errorf("no word at rank %d (catalog has %d words)", rank, cat.Len())
		}
		out := map[string]any{"rank": rank, "word": w}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(os.Stdout, string(b))
		return err
	},
}
