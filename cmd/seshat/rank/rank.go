package rank

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/flarebyte/seshat-lexis/catalog"
	"github.com/spf13/cobra"
)

const exitCodeMiss = 2

// missError distinguishes a lookup miss from execution errors; the word
// simply is not in the catalog.
type missError struct{ word string }

func (e missError) Error() string { return "word not in catalog: " + e.word }
func (e missError) ExitCode() int { return exitCodeMiss }

type result struct {
	Word  string `json:"word"`
	Rank  *int   `json:"rank,omitempty"`
	Found bool   `json:"found"`
}

// Cmd implements `seshat rank WORD`.
var Cmd = &cobra.Command{
	Use:           "rank WORD",
	Short:         "Print the frequency rank of a word, matched case-sensitively",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := args[0]
		res := result{Word: w}
		if r, found := catalog.Top().Rank(w); found {
			res.Rank = &r
			res.Found = true
		}
		b, err := json.Marshal(res)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(os.Stdout, string(b)); err != nil {
			return err
		}
		if !res.Found {
			return missError{word: w}
		}
		return nil
	},
}
