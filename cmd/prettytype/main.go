// Package main provides the prettytype command-line tool for reflowing
// single-line generic type dumps into an indented tree.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/abemedia/prettytype"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prettytype [flags] [file...]",
		Short: "Reflow single-line generic type dumps into an indented tree",
		Long: `Reflows flat generic type names, such as C++ template types from compiler
diagnostics, into one argument per line. If no file is provided, reads from
stdin. Output is written to stdout.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().String("config", "", "TOML file with formatter settings")
	cmd.Flags().Int("indent", 0, "spaces per nesting level (0 for the configured default)")
	cmd.Flags().String("placeholder", "", "replacement for collapsed boilerplate types")
	cmd.Flags().String("color", "auto", "colorize output (auto|on|off)")
	cmd.Flags().Int("jobs", 0, "number of files formatted in parallel (0 for GOMAXPROCS)")

	return cmd
}

//nolint:cyclop
func run(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	indent, err := cmd.Flags().GetInt("indent")
	if err != nil {
		return err
	}
	placeholder, err := cmd.Flags().GetString("placeholder")
	if err != nil {
		return err
	}
	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}

	config := &prettytype.Config{}
	if configPath != "" {
		if config, err = prettytype.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if indent > 0 {
		config.IndentWidth = indent
	}
	if placeholder != "" {
		config.Placeholder = placeholder
	}

	out := cmd.OutOrStdout()
	switch colorFlag {
	case "on":
		config.Highlight = true
	case "off":
		config.Highlight = false
	case "auto":
		config.Highlight = config.Highlight || isTerminal(out)
	default:
		return fmt.Errorf("unsupported color mode %q", colorFlag)
	}

	formatter := prettytype.New(config)

	if len(args) == 0 {
		input, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading from stdin: %w", err)
		}
		return formatter.Fprint(out, input)
	}

	outputs, err := formatFiles(cmd, formatter, args, jobs)
	if err != nil {
		return err
	}
	for _, output := range outputs {
		if _, err := out.Write(output); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}

// formatFiles reads and formats the files concurrently. The results are
// returned in the order of paths.
func formatFiles(cmd *cobra.Command, formatter *prettytype.Formatter, paths []string, jobs int) ([][]byte, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	outputs := make([][]byte, len(paths))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			input, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading file %s: %w", path, err)
			}
			var buf bytes.Buffer
			if err := formatter.Fprint(&buf, input); err != nil {
				return fmt.Errorf("formatting file %s: %w", path, err)
			}
			outputs[i] = buf.Bytes()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
