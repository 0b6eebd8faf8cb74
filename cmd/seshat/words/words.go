package words

import (
	"fmt"
	"slices"

	"github.com/flarebyte/seshat-lexis/catalog"
	"github.com/flarebyte/seshat-lexis/internal/config"
	"github.com/flarebyte/seshat-lexis/internal/emit"
	"github.com/flarebyte/seshat-lexis/internal/script"
	"github.com/spf13/cobra"
)

var (
	flagAlpha  bool
	flagFrom   int
	flagTo     int
	flagBefore int
	flagFormat string
	flagOut    string
	flagPretty bool
	flagWhere  string
	flagConfig string
)

// Cmd implements `seshat words`.
var Cmd = &cobra.Command{
	Use:           "words",
	Short:         "Print catalog words by rank, optionally bounded, filtered and sorted",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, where, err := resolveSettings(cmd)
		if err != nil {
			return err
		}
		span, err := buildSpan(cmd)
		if err != nil {
			return err
		}

		cat := catalog.Top()
		lo, _, ok := span.Bounds(cat.Len())
		if !ok {
			return fmt.Errorf("no words in range")
		}
		selected, _ := catalog.Range[string](cat, span)

		if where != "" {
			selected, err = script.FilterWords(selected, lo, where)
			if err != nil {
				return err
			}
		}
		if flagAlpha {
			slices.Sort(selected)
		}

		return emit.Write(emit.Report{Count: len(selected), Words: selected}, opts)
	},
}

// resolveSettings merges the optional CUE config with flags; a flag set on
// the command line wins over the config value.
func resolveSettings(cmd *cobra.Command) (emit.Options, string, error) {
	opts := emit.Options{Format: flagFormat, Out: flagOut, Pretty: flagPretty}
	where := flagWhere
	if flagConfig == "" {
		return opts, where, nil
	}
	s, err := config.Parse(flagConfig)
	if err != nil {
		return emit.Options{}, "", err
	}
	if !cmd.Flags().Changed("format") && s.Output.Format != "" {
		opts.Format = s.Output.Format
	}
	if !cmd.Flags().Changed("out") && s.Output.Out != "" {
		opts.Out = s.Output.Out
	}
	if !cmd.Flags().Changed("pretty") {
		opts.Pretty = s.Output.Pretty
	}
	if !cmd.Flags().Changed("where") && s.Filter.Where != "" {
		where = s.Filter.Where
	}
	return opts, where, nil
}

func buildSpan(cmd *cobra.Command) (catalog.Span, error) {
	var span catalog.Span
	if cmd.Flags().Changed("from") {
		span.Start = catalog.Included(flagFrom)
	}
	toSet := cmd.Flags().Changed("to")
	beforeSet := cmd.Flags().Changed("before")
	if toSet && beforeSet {
		return catalog.Span{}, fmt.Errorf("--to and --before are mutually exclusive")
	}
	if toSet {
		span.End = catalog.Included(flagTo)
	}
	if beforeSet {
		span.End = catalog.Excluded(flagBefore)
	}
	return span, nil
}

func init() {
	Cmd.Flags().BoolVar(&flagAlpha, "alpha", false, "Sort output alphabetically")
	Cmd.Flags().IntVar(&flagFrom, "from", 0, "First rank to include (inclusive)")
	Cmd.Flags().IntVar(&flagTo, "to", 0, "Last rank to include (inclusive)")
	Cmd.Flags().IntVar(&flagBefore, "before", 0, "First rank to exclude (exclusive end)")
	Cmd.Flags().StringVar(&flagFormat, "format", "json", "Output format: json|yaml|lines")
	Cmd.Flags().StringVar(&flagOut, "out", "-", "Output path, - for stdout")
	Cmd.Flags().BoolVar(&flagPretty, "pretty", false, "Pretty JSON output")
	Cmd.Flags().StringVar(&flagWhere, "where", "", "Lua predicate over word and rank")
	Cmd.Flags().StringVar(&flagConfig, "config", "", "Path to config file (.cue)")
}
