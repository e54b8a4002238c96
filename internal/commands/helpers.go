package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gerunddev/composer/internal/config"
	"github.com/gerunddev/composer/internal/logger"
	"github.com/gerunddev/composer/internal/styles"
)

// env is what every command needs once config is loaded
type env struct {
	cfg     *config.Config
	log     *logger.Logger
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	cleanup func()
}

// setup loads the config and opens the log file
func setup(verbose bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	l, cleanup, err := openLogger(cfg, verbose, os.Stderr)
	if err != nil {
		return nil, err
	}
	l.ConfigLoaded(config.ConfigPath(), cfg.AutosaveInterval, cfg.WrapWidth)

	return &env{
		cfg:     cfg,
		log:     l,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		cleanup: cleanup,
	}, nil
}

// openLogger builds the command logger from the config. Verbose runs log at
// debug level and copy every entry to stderr. A log file that cannot be
// opened is skipped.
func openLogger(cfg *config.Config, verbose bool, stderr io.Writer) (*logger.Logger, func(), error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	var extra []io.Writer
	if verbose {
		level = log.DebugLevel
		extra = append(extra, stderr)
	}

	if cfg.LogFile != "" {
		if l, cleanup, err := logger.NewFileLogger(cfg.LogFile, level, extra...); err == nil {
			return l, cleanup, nil
		}
	}
	if len(extra) > 0 {
		return logger.NewMultiLogger(level, extra...), func() {}, nil
	}
	return logger.Discard(), func() {}, nil
}

// run sets up the environment, runs fn and exits 1 on error
func run(args []string, fn func(e *env) error) {
	e, err := setup(hasFlag(args, "--verbose"))
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	err = fn(e)
	e.cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}
}

// valueFlags are the flags that consume the following argument
var valueFlags = map[string]bool{
	"--start": true,
	"--end":   true,
	"--file":  true,
	"--width": true,
}

// flagValue returns the argument following name
func flagValue(args []string, name string) (string, bool) {
	for i, arg := range args {
		if arg == name && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}

func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == name {
			return true
		}
	}
	return false
}

// intFlag parses an integer flag. ok is false when the flag is absent.
func intFlag(args []string, name string) (n int, ok bool, err error) {
	v, ok := flagValue(args, name)
	if !ok {
		return 0, false, nil
	}
	n, err = strconv.Atoi(v)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	return n, true, nil
}

// positional returns the arguments that are neither flags nor flag values
func positional(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if valueFlags[arg] {
			i++
			continue
		}
		if strings.HasPrefix(arg, "--") {
			continue
		}
		out = append(out, arg)
	}
	return out
}

// readInput reads path, or stdin when path is empty or "-"
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// writeText prints text, terminating it with a newline
func writeText(w io.Writer, text string) {
	fmt.Fprint(w, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(w)
	}
}
