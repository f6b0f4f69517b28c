package root

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/happy/internal/buildinfo"
	"github.com/idilsaglam/happy/internal/cli"
	"github.com/idilsaglam/happy/internal/config"
	"github.com/idilsaglam/happy/internal/exitcode"
	"github.com/idilsaglam/happy/internal/logging"
	"github.com/idilsaglam/happy/internal/tui"
	"github.com/idilsaglam/happy/internal/ui"
)

type flags struct {
	config    string
	name      string
	theme     string
	prompt    string
	logLevel  string
	logFormat string
	noColor   bool
	noEcho    bool
	tui       bool
}

// NewRootCmd creates the root command for happy.
func NewRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "happy",
		Short: "A conversational task assistant for the terminal",
		Long: "happy reads commands one line at a time and keeps a task list for the session.\n" +
			"Type help inside the session to list commands, bye to leave.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &exitcode.UsageError{Err: fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &f)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &exitcode.UsageError{Err: err}
	})

	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "config file (default "+config.DefaultPath()+")")
	fl.StringVar(&f.name, "name", "", "assistant name shown in the welcome banner")
	fl.StringVar(&f.theme, "theme", "", "theme: "+strings.Join(ui.ThemeNames, ", "))
	fl.StringVar(&f.prompt, "prompt", "", "prompt printed before each line")
	fl.StringVar(&f.logLevel, "log-level", "", "diagnostic log level: debug, info, warn, error")
	fl.StringVar(&f.logFormat, "log-format", "", "diagnostic log format: text, json, logfmt")
	fl.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	fl.BoolVar(&f.noEcho, "no-echo", false, "do not repeat entered commands")
	fl.BoolVar(&f.tui, "tui", false, "start the interactive terminal interface")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command with provided args.
func Execute(ctx context.Context, args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// Main executes the command and maps the outcome to a process exit code.
// Failures are reported as one short line on stderr, without usage or stack
// traces. An interrupt ends the session quietly.
func Main(ctx context.Context, args []string, stderr io.Writer) int {
	err := Execute(ctx, args)
	if err == nil || errors.Is(err, context.Canceled) {
		return exitcode.Success
	}

	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		msg = "error"
	}
	_, _ = fmt.Fprintln(stderr, "happy: "+msg)

	var ec exitcode.Coder
	if errors.As(err, &ec) {
		if c := ec.ExitCode(); c != exitcode.Success {
			return c
		}
	}
	return exitcode.Error
}

// resolveConfig layers explicitly set flags over config.Load.
func resolveConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("name") {
		cfg.Name = f.name
	}
	if changed("theme") {
		cfg.Theme = f.theme
	}
	if changed("prompt") {
		cfg.Prompt = f.prompt
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if changed("no-color") && f.noColor {
		cfg.Color = false
	}
	if changed("no-echo") && f.noEcho {
		cfg.Echo = false
	}
	if changed("tui") {
		cfg.TUI = f.tui
	}

	if strings.TrimSpace(cfg.Name) == "" {
		return nil, &exitcode.UsageError{Err: fmt.Errorf("assistant name cannot be empty")}
	}
	if !ui.KnownTheme(cfg.Theme) {
		return nil, &exitcode.UsageError{Err: fmt.Errorf("unknown theme %q (want one of %s)", cfg.Theme, strings.Join(ui.ThemeNames, ", "))}
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*log.Logger, error) {
	opts := logging.DefaultOptions()
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, &exitcode.UsageError{Err: err}
	}
	formatter, err := logging.ParseFormatter(cfg.LogFormat)
	if err != nil {
		return nil, &exitcode.UsageError{Err: err}
	}
	opts.Level = level
	opts.Formatter = formatter
	return logging.New(cmd.ErrOrStderr(), opts), nil
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	if cfg.Path != "" {
		logger.Debug("config loaded", "path", cfg.Path)
	}

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	color := cfg.Color && ui.IsTTY(out)
	opts := []cli.Option{
		cli.WithLogger(logger),
		cli.WithTheme(ui.ThemeByName(cfg.Theme)),
		cli.WithColor(color),
	}

	if cfg.TUI {
		if !ui.IsTTY(out) {
			return fmt.Errorf("tui requires a terminal")
		}
		m := tui.New(tui.Options{Name: cfg.Name, Echo: cfg.Echo}, opts...)
		return tui.Run(cmd.Context(), m, in, out)
	}

	session := cli.NewSession(out, opts...)
	runner := cli.NewRunner(session, in, out, cli.Options{
		Name:   cfg.Name,
		Prompt: cfg.Prompt,
		Echo:   cfg.Echo,
	})
	return runner.Run(cmd.Context())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "happy %s\n", buildinfo.Summary())
			return err
		},
	}
}
