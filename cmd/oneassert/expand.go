package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"oneassert/internal/diagfmt"
	"oneassert/internal/driver"
	"oneassert/internal/project"
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] <file.oa|directory>",
	Short: "Rewrite assertion conditions into instrumented fragments",
	Long: `Expand parses assertion argument lists and rewrites each condition into
a fragment that captures operand values and panics with an aligned report`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().StringP("expr", "e", "", "expand an inline argument list instead of a file")
	expandCmd.Flags().String("format", "pretty", "output format for single inputs (pretty|json|mappings)")
	expandCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	expandCmd.Flags().String("progress", "auto", "progress UI for directory runs (auto|on|off)")
	expandCmd.Flags().Bool("cache", false, "reuse fragments from the disk cache")
	expandCmd.Flags().String("cache-dir", "", "cache location (default: user cache directory)")
	expandCmd.Flags().String("prefix", "", "prefix for generated bindings")
	expandCmd.Flags().Bool("no-flavor", false, "disable the joke messages for literal true")
}

func runExpand(cmd *cobra.Command, args []string) error {
	expr, err := cmd.Flags().GetString("expr")
	if err != nil {
		return fmt.Errorf("failed to get expr flag: %w", err)
	}
	if expr == "" && len(args) == 0 {
		return fmt.Errorf("provide a file, a directory, or --expr")
	}
	if expr != "" && len(args) > 0 {
		return fmt.Errorf("--expr and a path argument are mutually exclusive")
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "mappings":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	startDir := "."
	if len(args) > 0 {
		startDir = args[0]
	}
	opts, err := buildExpandOptions(cmd, startDir)
	if err != nil {
		return err
	}

	if expr != "" {
		res := driver.ExpandSource("<expr>", []byte(expr), opts)
		return emitSingle(cmd, res, format)
	}

	st, err := os.Stat(args[0])
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if !st.IsDir() {
		res, err := driver.ExpandFile(args[0], opts)
		if err != nil {
			return fmt.Errorf("expansion failed: %w", err)
		}
		return emitSingle(cmd, res, format)
	}
	return runExpandDir(cmd, args[0], opts)
}

// buildExpandOptions merges command-line flags over the nearest
// oneassert.toml. Explicit flags win.
func buildExpandOptions(cmd *cobra.Command, startDir string) (driver.ExpandOptions, error) {
	var opts driver.ExpandOptions

	if st, err := os.Stat(startDir); err == nil && !st.IsDir() {
		startDir = filepath.Dir(startDir)
	}
	manifest, found, err := project.LoadNearestManifest(startDir)
	if err != nil {
		return opts, err
	}

	opts.Prefix, err = cmd.Flags().GetString("prefix")
	if err != nil {
		return opts, fmt.Errorf("failed to get prefix flag: %w", err)
	}
	if opts.Prefix == "" && found {
		opts.Prefix = manifest.Expand.Prefix
	}

	noFlavor, err := cmd.Flags().GetBool("no-flavor")
	if err != nil {
		return opts, fmt.Errorf("failed to get no-flavor flag: %w", err)
	}
	opts.NoFlavor = noFlavor || (found && !manifest.Expand.FlavorEnabled())

	opts.MaxDiagnostics, err = cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return opts, fmt.Errorf("failed to get cache flag: %w", err)
	}
	if useCache {
		opts.Cache, err = openCache(cmd)
		if err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func openCache(cmd *cobra.Command) (*driver.DiskCache, error) {
	dir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache-dir flag: %w", err)
	}
	if dir != "" {
		return driver.OpenDiskCacheAt(dir)
	}
	return driver.OpenDiskCache("oneassert")
}

// emitSingle prints diagnostics to stderr and, on success, the fragment
// to stdout in the requested format.
func emitSingle(cmd *cobra.Command, res *driver.ExpandResult, format string) error {
	printDiagnostics(cmd, res)
	if !res.OK {
		return fmt.Errorf("expansion failed")
	}

	switch format {
	case "pretty":
		fmt.Fprintln(os.Stdout, res.Fragment.Text)
		return nil
	case "json":
		return diagfmt.WriteFragmentJSON(os.Stdout, res.Fragment, res.FileSet, diagfmt.JSONOpts{IncludePositions: true})
	case "mappings":
		fmt.Fprintln(os.Stdout, res.Fragment.Text)
		fmt.Fprintln(os.Stdout)
		diagfmt.WriteFragmentMappings(os.Stdout, res.Fragment, res.FileSet)
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func runExpandDir(cmd *cobra.Command, dir string, opts driver.ExpandOptions) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	progressFlag, err := cmd.Flags().GetString("progress")
	if err != nil {
		return fmt.Errorf("failed to get progress flag: %w", err)
	}
	mode, err := readUIMode(progressFlag)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	var (
		results []*driver.ExpandResult
		written int
	)
	if shouldUseTUI(mode) {
		files, listErr := driver.ListInputFiles(dir)
		if listErr != nil {
			return fmt.Errorf("expansion failed: %w", listErr)
		}
		results, written, err = runExpandDirWithUI(cmd.Context(), "expanding "+dir, files, dir, opts, jobs)
	} else {
		results, err = driver.ExpandDir(cmd.Context(), dir, opts, jobs, nil)
		if err == nil {
			written = driver.WriteOutputs(results, nil)
		}
	}
	if err != nil {
		return fmt.Errorf("expansion failed: %w", err)
	}

	failed := 0
	for _, res := range results {
		if res.Bag.HasErrors() || res.Bag.HasWarnings() {
			printDiagnostics(cmd, res)
		}
		if !res.OK {
			failed++
		}
	}

	if !quiet {
		fmt.Fprintf(os.Stdout, "expanded %d of %d files\n", written, len(results))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(results))
	}
	return nil
}

func printDiagnostics(cmd *cobra.Command, res *driver.ExpandResult) {
	if !res.Bag.HasErrors() && !res.Bag.HasWarnings() {
		return
	}
	res.Bag.Sort()
	diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
		Color:   colorEnabled(cmd, os.Stderr),
		Context: 2,
	})
}

func colorEnabled(cmd *cobra.Command, out *os.File) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(out))
}
