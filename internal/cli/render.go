package cli

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/Neumenon/quill/quill"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	indent       string // indentation unit
	doubleQuotes bool   // use " instead of ' for strings
	inline       int    // inline character limit (0 = off)
	detectTimes  bool   // map RFC 3339 strings to Date literals
	config       string // optional TOML config path
	output       string // output file path (stdout if empty)
}

// newRenderCmd creates the render command. It reads a JSON document
// from a file argument or stdin and prints the quill literal.
//
// Precedence: defaults < config file < flags the user set explicitly.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{indent: "\t"}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a JSON document as a source literal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.indent, "indent", "\t", "indentation unit")
	cmd.Flags().BoolVar(&opts.doubleQuotes, "double-quotes", false, "quote strings with \" instead of '")
	cmd.Flags().IntVar(&opts.inline, "inline", 0, "inline composites up to this many characters (0 disables)")
	cmd.Flags().BoolVar(&opts.detectTimes, "detect-times", false, "render RFC 3339 strings as Date literals")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML config file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	if opts.config != "" {
		cfg, err := LoadConfig(opts.config)
		if err != nil {
			return err
		}
		applyConfig(cmd, opts, cfg)
		logger.Debug("loaded config", "path", opts.config)
	}

	data, src, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	logger.Debug("read input", "source", src, "bytes", len(data))

	v, err := quill.FromJSONWithOpts(data, quill.BridgeOpts{DetectTimes: opts.detectTimes})
	if err != nil {
		return err
	}

	ropts := quill.DefaultOptions()
	ropts.Indent = opts.indent
	ropts.SingleQuotes = !opts.doubleQuotes
	ropts.InlineCharacterLimit = opts.inline

	out := quill.RenderWithOptions(v, ropts)
	logger.Debug("rendered", "chars", utf8.RuneCountInString(out))

	return writeOutput(cmd, opts.output, out)
}

// applyConfig fills opts from cfg for settings the user did not set
// explicitly on the command line.
func applyConfig(cmd *cobra.Command, opts *renderOpts, cfg *Config) {
	if cfg.Indent != nil && !cmd.Flags().Changed("indent") {
		opts.indent = *cfg.Indent
	}
	if cfg.SingleQuotes != nil && !cmd.Flags().Changed("double-quotes") {
		opts.doubleQuotes = !*cfg.SingleQuotes
	}
	if cfg.InlineLimit != nil && !cmd.Flags().Changed("inline") {
		opts.inline = *cfg.InlineLimit
	}
	if cfg.DetectTimes != nil && !cmd.Flags().Changed("detect-times") {
		opts.detectTimes = *cfg.DetectTimes
	}
}

// readInput returns the JSON document from the file argument, or
// stdin when no argument (or "-") is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("read input: %w", err)
		}
		return data, args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, "", fmt.Errorf("read stdin: %w", err)
	}
	return data, "stdin", nil
}

func writeOutput(cmd *cobra.Command, path, out string) error {
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(path, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
