package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

const defaultConfigPath = "./jsanalyzer.toml"

const (
	modeWeb   = "web"
	modeTUI   = "tui"
	modeCLI   = "cli"
	modeWatch = "watch"
)

type cliOptions struct {
	configPath string
	mode       string
	file       string
	question   string
	verbose    bool
	version    bool
	args       []string
}

func parseOptions(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("jsanalyzer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", defaultConfigPath, "Path to config file")
	fs.StringVar(&opts.mode, "mode", modeWeb, "Front end to run: web, tui, cli or watch")
	fs.StringVar(&opts.file, "file", "", "Source file for cli mode (- reads stdin); also pre-fills the tui editor")
	fs.StringVar(&opts.question, "question", "", "Question to answer about the source in cli mode")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}

	opts.args = fs.Args()
	opts.mode = strings.ToLower(strings.TrimSpace(opts.mode))
	return opts, nil
}

func validateModeOptions(opts *cliOptions) error {
	switch opts.mode {
	case modeWeb:
		if len(opts.args) > 0 {
			return fmt.Errorf("web mode takes no positional arguments")
		}
	case modeTUI:
		if len(opts.args) > 1 {
			return fmt.Errorf("tui mode takes at most one source file")
		}
		if opts.file == "" && len(opts.args) == 1 {
			opts.file = opts.args[0]
		}
	case modeCLI:
		if opts.file == "" && len(opts.args) == 1 {
			opts.file = opts.args[0]
		} else if len(opts.args) > 0 {
			return fmt.Errorf("cli mode takes a single source file")
		}
		if opts.file == "" {
			return fmt.Errorf("cli mode requires -file or a positional source path")
		}
	case modeWatch:
		if opts.question != "" {
			return fmt.Errorf("-question is only supported in cli mode")
		}
		if len(opts.args) == 0 {
			opts.args = []string{"."}
		}
	default:
		return fmt.Errorf("unknown mode %q (want web, tui, cli or watch)", opts.mode)
	}
	return nil
}
