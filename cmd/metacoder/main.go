package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arloliu/metacoder/format"
	"github.com/arloliu/metacoder/record"
)

const maxSizeEnv = "METACODER_MAX_SIZE"

// usageError marks errors caused by the command line rather than the data.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(f string, args ...any) error {
	return usageError{err: fmt.Errorf(f, args...)}
}

// environment is the process state run depends on.
type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
}

// options holds the parsed global flags.
type options struct {
	input   string
	output  string
	maxSize int
	verbose bool
}

func main() {
	os.Exit(run(os.Args[1:], environment{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		getenv: os.Getenv,
	}))
}

func run(args []string, env environment) int {
	err := execute(args, env)
	if err == nil {
		return 0
	}

	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}

	fmt.Fprintf(env.stderr, "error: %v\n", err)

	var usage usageError
	if errors.As(err, &usage) {
		fmt.Fprintln(env.stderr, "run 'metacoder --help' for usage")
		return 2
	}

	return 1
}

func execute(args []string, env environment) error {
	var opts options

	flagSet := pflag.NewFlagSet("metacoder", pflag.ContinueOnError)
	flagSet.SetOutput(env.stderr)
	flagSet.StringVarP(&opts.input, "input", "i", inputJSON, "record input format: json or yaml")
	flagSet.StringVarP(&opts.output, "output", "o", outputJSON, "decode output format: json, yaml or cbor")
	flagSet.IntVar(&opts.maxSize, "max-size", 0, "slot size in bytes, 0 for unlimited (env "+maxSizeEnv+")")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug details to stderr")
	flagSet.Usage = func() { printHelp(env.stderr, flagSet) }
	flagSet.SetInterspersed(false)

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}

		return usageError{err: err}
	}

	if !flagSet.Changed("max-size") {
		if value := env.getenv(maxSizeEnv); value != "" {
			n, err := strconv.Atoi(value)
			if err != nil {
				return usagef("%s=%q is not an integer", maxSizeEnv, value)
			}
			opts.maxSize = n
		}
	}

	if err := validateFormats(opts); err != nil {
		return err
	}

	logger := zap.NewNop()
	if opts.verbose {
		logger = newVerboseLogger(env.stderr)
		defer func() { _ = logger.Sync() }()
	}

	coder, err := record.NewCoder(record.WithMaxSize(opts.maxSize), record.WithLogger(logger))
	if err != nil {
		return usageError{err: err}
	}

	positional := flagSet.Args()
	if len(positional) == 0 {
		return usagef("missing command")
	}

	if positional[0] == "inspect" {
		if len(positional) != 2 {
			return usagef("inspect takes exactly one hex argument")
		}

		text, err := readArg(positional[1], env.stdin)
		if err != nil {
			return err
		}

		return inspect(env.stdout, strings.TrimSpace(text), opts.output)
	}

	kind, err := format.ParseRecordKind(positional[0])
	if err != nil {
		return usageError{err: err}
	}

	if len(positional) != 3 {
		return usagef("usage: metacoder %s <encode|decode> <arg>", kind)
	}

	arg, err := readArg(positional[2], env.stdin)
	if err != nil {
		return err
	}

	logger.Debug("running command", zap.Stringer("kind", kind), zap.String("action", positional[1]))

	switch positional[1] {
	case "encode":
		encoded, err := encodeRecord(coder, kind, []byte(arg), opts.input)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(env.stdout, encoded)

		return err
	case "decode":
		value, err := decodeRecord(coder, kind, strings.TrimSpace(arg))
		if err != nil {
			return err
		}

		return render(env.stdout, value, opts.output)
	default:
		return usagef("unknown action %q, want encode or decode", positional[1])
	}
}

// readArg returns arg itself, or all of stdin when arg is "-".
func readArg(arg string, stdin io.Reader) (string, error) {
	if arg != "-" {
		return arg, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return string(data), nil
}

func newVerboseLogger(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)

	return zap.New(core, zap.Development())
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `Metacoder encodes and decodes contract metadata records.

Usage:
  metacoder [flags] <agreement|certificate|claim-data|strings> encode <record>
  metacoder [flags] <agreement|certificate|claim-data|strings> decode <hex>
  metacoder [flags] inspect <hex>

Records are JSON (comments allowed) or YAML with --input yaml.
Use "-" as the argument to read it from standard input.

Examples:
  metacoder strings encode '["a", "bb", ""]'
  metacoder claim-data decode 0x0000...
  metacoder --output yaml inspect 0x0000...

Flags:
`)
	fmt.Fprint(w, flagSet.FlagUsages())
}
