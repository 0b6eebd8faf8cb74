package diagnose

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/flarebyte/seshat-lexis/wordlist"
	"github.com/spf13/cobra"
)

// Report describes the embedded catalog's integrity. Field order is stable
// to keep the one-line JSON deterministic.
type Report struct {
	Count         int      `json:"count"`
	ExpectedCount int      `json:"expectedCount"`
	Duplicates    []string `json:"duplicates,omitempty"`
	Blanks        int      `json:"blanks,omitempty"`
	NotLowercase  []string `json:"notLowercase,omitempty"`
	OK            bool     `json:"ok"`
}

// Cmd implements `seshat diagnose`.
var Cmd = &cobra.Command{
	Use:           "diagnose",
	Short:         "Check the embedded word list invariants",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		rep := inspect(wordlist.Words(), wordlist.Count)
		if err := printReportOneLine(os.Stdout, rep); err != nil {
			return err
		}
		if !rep.OK {
			return fmt.Errorf("catalog integrity check failed")
		}
		return nil
	},
}

func inspect(words []string, expected int) Report {
	rep := Report{Count: len(words), ExpectedCount: expected}
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if w == "" || strings.TrimSpace(w) == "" {
			rep.Blanks++
			continue
		}
		if w != strings.ToLower(w) {
			rep.NotLowercase = append(rep.NotLowercase, w)
		}
		if seen[w] {
			rep.Duplicates = append(rep.Duplicates, w)
		}
		seen[w] = true
	}
	rep.OK = rep.Count == expected && len(rep.Duplicates) == 0 && rep.Blanks == 0 && len(rep.NotLowercase) == 0
	return rep
}

func printReportOneLine(w io.Writer, rep Report) error {
	b, err := json.Marshal(rep)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
