package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lucrnz/humandur/duration"
	"github.com/lucrnz/humandur/internal/config"
	"github.com/lucrnz/humandur/internal/logging"
	"github.com/lucrnz/humandur/internal/util"
	"github.com/lucrnz/humandur/internal/version"
)

type options struct {
	configPath string
	logLevel   string
	logFormat  string
	lenient    bool
	comma      bool
	unit       string
	from       string
	subtract   bool
}

// NewRootCmd builds the humandur command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "humandur [flags] [expression...]",
		Short: "Convert human-readable durations to milliseconds",
		Long: `humandur

Converts duration expressions such as "1h 30m", "1.5mo" or "250" into milliseconds.
Each argument is one expression. With no arguments, expressions are read from stdin, one per line.

Units must be given from coarsest to finest: y, mo, w, d, h, m, s, ms.
Months are 30 days and years are 365.25 days.
Use "--" before expressions that start with a minus sign: humandur -- "-3 days"
`,
		Args:    cobra.ArbitraryArgs,
		Version: version.Print(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file (default: $XDG_CONFIG_HOME/"+config.RelPath+")")
	f.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	f.StringVar(&opts.logFormat, "log-format", "text", "Log format: text or json")
	f.BoolVarP(&opts.lenient, "lenient", "l", false, "Also accept Go-style compact durations such as \"1h30m\"")
	f.BoolVar(&opts.comma, "comma", false, "Group digits with commas")
	f.StringVarP(&opts.unit, "unit", "u", "", "Print results in this unit instead of milliseconds (e.g. \"h\", \"days\")")
	f.StringVarP(&opts.from, "from", "f", "", "Print the RFC3339 timestamp offset by the duration (\"now\" for the current time)")
	f.BoolVar(&opts.subtract, "subtract", false, "Offset --from backward instead of forward")

	// Show usage only when there's a flag parsing error
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_ = cmd.Usage()
		return err
	})

	return cmd
}

// ExecuteContext runs the root command with os.Args.
func ExecuteContext(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	if err := applyConfig(cmd, opts); err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
	if err != nil {
		return fmt.Errorf("invalid logging flags: %w", err)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithContext(ctx, logger.With("lenient", opts.lenient))
	info := version.Get()
	logging.FromContext(ctx).Debug("humandur_start", "version", info.String(), "go", info.GoVersion)

	unit := duration.Millisecond
	if opts.unit != "" {
		s, ok := duration.LookupUnit(strings.ToLower(opts.unit))
		if !ok {
			return fmt.Errorf("invalid --unit value %q", opts.unit)
		}
		unit = s
	}

	if opts.subtract && opts.from == "" {
		return errors.New("--subtract requires --from to be specified")
	}
	if opts.from != "" && cmd.Flags().Changed("unit") {
		return errors.New("--unit cannot be used with --from")
	}
	var from time.Time
	if opts.from != "" {
		from, err = parseTimestamp(opts.from)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	failed := 0
	total, err := eachExpression(ctx, args, cmd.InOrStdin(), func(expr string) {
		res, err := resolve(ctx, expr, opts.lenient)
		if err != nil {
			failed++
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return
		}
		if opts.from != "" {
			fmt.Fprintln(out, offset(from, res, opts.subtract).Format(time.RFC3339Nano))
			return
		}
		fmt.Fprintln(out, util.FormatNumber(util.ScaleMillis(res.Millis, unit), opts.comma))
	})
	if err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d expressions could not be parsed", failed, total)
	}
	return nil
}

// resolve parses one expression and records the outcome on the context's
// logger.
func resolve(ctx context.Context, expr string, lenient bool) (util.Resolution, error) {
	logger := logging.FromContext(ctx)

	res, err := util.ResolveDuration(expr, lenient)
	if err != nil {
		var pe *duration.ParseError
		if errors.As(err, &pe) {
			logger.Debug("duration_rejected", "input", expr, "reason", pe.Reason)
		}
		return util.Resolution{}, err
	}
	if res.Fallback {
		logger.Debug("duration_fallback", "input", expr, "millis", res.Millis.String())
	} else {
		logger.Debug("duration_parsed", "input", expr, "value", res.Value.String(), "millis", res.Millis.String())
	}
	return res, nil
}

// applyConfig fills flags that were not set on the command line from the
// config file.
func applyConfig(cmd *cobra.Command, opts *options) error {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		cfg, _, err = config.LoadDefault()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if cfg.LogLevel != "" && !flags.Changed("log-level") {
		opts.logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !flags.Changed("log-format") {
		opts.logFormat = cfg.LogFormat
	}
	if cfg.Unit != "" && !flags.Changed("unit") && opts.from == "" {
		opts.unit = cfg.Unit
	}
	if cfg.Lenient && !flags.Changed("lenient") {
		opts.lenient = true
	}
	if cfg.Comma && !flags.Changed("comma") {
		opts.comma = true
	}
	return nil
}

func parseTimestamp(s string) (time.Time, error) {
	if strings.EqualFold(s, "now") {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --from value: %w", err)
	}
	return t, nil
}

func offset(from time.Time, res util.Resolution, subtract bool) time.Time {
	if !res.Fallback {
		if subtract {
			return duration.Subtract(from, res.Value)
		}
		return duration.Add(from, res.Value)
	}
	d := time.Duration(res.Millis.Int64()) * time.Millisecond
	if subtract {
		d = -d
	}
	return from.Add(d)
}

// eachExpression calls fn for every argument, or for every non-blank stdin
// line when there are no arguments. Lines are handled as they are read and
// the context is checked before each one. It returns the number of
// expressions handed to fn.
func eachExpression(ctx context.Context, args []string, r io.Reader, fn func(string)) (int, error) {
	if len(args) > 0 {
		for i, expr := range args {
			if err := ctx.Err(); err != nil {
				return i, err
			}
			fn(expr)
		}
		return len(args), nil
	}

	br := bufio.NewReader(r)
	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		line, err := br.ReadString('\n')
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if strings.TrimSpace(line) != "" {
			fn(line)
			n++
		}
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("failed to read stdin: %w", err)
		}
	}
}
