package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"oneassert/internal/diagfmt"
	"oneassert/internal/driver"
	"oneassert/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.oa",
	Short: "Parse an assertion input file and show its structure",
	Long:  `Parse splits an assertion argument list into the condition and the optional message tail`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type parseSummary struct {
	Condition condPart  `json:"condition"`
	Message   *condPart `json:"message,omitempty"`
}

type condPart struct {
	Text     string               `json:"text"`
	Kind     string               `json:"kind,omitempty"`
	Location diagfmt.LocationJSON `json:"location"`
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:   colorEnabled(cmd, os.Stderr),
			Context: 2,
		})
	}
	if !result.Parsed.Cond.IsValid() {
		return fmt.Errorf("parsing failed")
	}

	file := result.FileSet.Get(result.FileID)
	cond := result.Builder.Exprs.Get(result.Parsed.Cond)
	summary := parseSummary{
		Condition: condPart{
			Text:     file.Snippet(cond.Span),
			Kind:     cond.Kind.String(),
			Location: locationOf(result, cond.Span),
		},
	}
	if result.Parsed.HasMsg {
		summary.Message = &condPart{
			Text:     file.Snippet(result.Parsed.MsgSpan),
			Location: locationOf(result, result.Parsed.MsgSpan),
		}
	}

	switch format {
	case "pretty":
		fmt.Fprintf(os.Stdout, "condition: `%s` (%s) at %d:%d\n",
			summary.Condition.Text, summary.Condition.Kind,
			summary.Condition.Location.StartLine, summary.Condition.Location.StartCol)
		if summary.Message != nil {
			fmt.Fprintf(os.Stdout, "message:   `%s` at %d:%d\n",
				summary.Message.Text,
				summary.Message.Location.StartLine, summary.Message.Location.StartCol)
		}
		return nil
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func locationOf(result *driver.ParseResult, span source.Span) diagfmt.LocationJSON {
	start, end := result.FileSet.Resolve(span)
	return diagfmt.LocationJSON{
		File:      result.FileSet.Get(span.File).Path,
		StartByte: span.Start,
		EndByte:   span.End,
		StartLine: start.Line,
		StartCol:  start.Col,
		EndLine:   end.Line,
		EndCol:    end.Col,
	}
}
