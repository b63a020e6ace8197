// Package main provides the CLI entrypoint for symbol-inventory.
//
// symbol-inventory reads fully-qualified type names from class paths, name
// listings or Go packages and reports:
//   - every package segment seen ("com", "example", ...)
//   - every canonical class identity ("Outer.Inner", anonymous types folded
//     into their enclosing type)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"symbol-inventory/internal/classify"
	"symbol-inventory/internal/config"
	"symbol-inventory/internal/inventory"
	"symbol-inventory/internal/source"
)

// EnvClasspath is consulted when no source is configured.
const EnvClasspath = "CLASSPATH"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return runWithArgs(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type options struct {
	configPath string
	manifests  stringList
	classpath  string
	packages   stringList
	dir        string
	workers    int
	format     string
	outPath    string
	logLevel   string
	skipEmpty  bool
	printCfg   bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var opts options

	fs := flag.NewFlagSet("symbol-inventory", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to YAML configuration file")
	fs.Var(&opts.manifests, "manifest", "name listing file, '-' for stdin (repeatable)")
	fs.StringVar(&opts.classpath, "classpath", "", "class path of directories and jars")
	fs.Var(&opts.packages, "packages", "Go package pattern (repeatable)")
	fs.StringVar(&opts.dir, "dir", "", "working directory for -packages")
	fs.IntVar(&opts.workers, "workers", 0, "number of classifying workers")
	fs.StringVar(&opts.format, "format", "", "output format: yaml, json or text")
	fs.StringVar(&opts.outPath, "o", "", "write output to file instead of stdout")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVar(&opts.skipEmpty, "skip-empty-segments", false, "do not record empty package segments")
	fs.BoolVar(&opts.printCfg, "print-config", false, "print the effective configuration as YAML and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [options]\n\n", fs.Name())
		fmt.Fprintln(stderr, "Inventories package segments and class names of a class path or Go module.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return &opts, nil
}

// buildConfig merges the configuration file with command-line overrides.
func buildConfig(opts *options) (*config.Config, error) {
	cfg := config.Default()

	if opts.configPath != "" {
		loaded, err := config.LoadFile(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if len(opts.manifests) > 0 {
		cfg.Sources = append(cfg.Sources, config.SourceConfig{Kind: config.KindManifest, Paths: opts.manifests})
	}

	if opts.classpath != "" {
		cfg.Sources = append(cfg.Sources, classpathSource(opts.classpath))
	}

	if len(opts.packages) > 0 {
		cfg.Sources = append(cfg.Sources, config.SourceConfig{Kind: config.KindPackages, Paths: opts.packages, Dir: opts.dir})
	}

	if len(cfg.Sources) == 0 {
		if cp := os.Getenv(EnvClasspath); cp != "" {
			src := classpathSource(cp)
			src.IgnoreMissing = true
			cfg.Sources = append(cfg.Sources, src)
		}
	}

	if opts.workers > 0 {
		cfg.Workers = opts.workers
	}
	if opts.format != "" {
		cfg.Output = opts.format
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.skipEmpty {
		cfg.SkipEmptySegments = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if len(cfg.Sources) == 0 {
		return nil, errors.New("no source configured: use -classpath, -manifest, -packages, -config or set " + EnvClasspath)
	}

	return cfg, nil
}

func classpathSource(value string) config.SourceConfig {
	return config.SourceConfig{Kind: config.KindClasspath, Paths: source.ParseClasspath(value).Entries}
}

func runWithArgs(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := buildConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if opts.printCfg {
		data, err := config.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}

		if _, err := stdout.Write(data); err != nil {
			return 1
		}

		return 0
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	src, err := cfg.BuildSource()
	if err != nil {
		logger.Error("build sources", "error", err)
		return 2
	}

	runner := inventory.NewRunner(inventory.Options{
		Workers:  cfg.Workers,
		Classify: classify.Options{SkipEmptySegments: cfg.SkipEmptySegments},
	}, logger)

	result, err := runner.Run(ctx, src)
	if err != nil {
		if inventory.IsSourceFailure(err) {
			fmt.Fprintf(stderr, "error: cannot enumerate names: %v\n", err)
		} else {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}

	if err := writeOutput(opts.outPath, stdout, result, cfg.Output); err != nil {
		fmt.Fprintf(stderr, "error writing output: %v\n", err)
		return 1
	}

	return 0
}

// writeOutput writes result to path, or to stdout when path is empty.
func writeOutput(path string, stdout io.Writer, result *inventory.Result, format string) error {
	if path == "" {
		return writeResult(stdout, result, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := writeResult(f, result, format); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func writeResult(w io.Writer, result *inventory.Result, format string) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case config.OutputText:
		return result.WriteText(w)
	case config.OutputJSON:
		if data, err = result.JSON(); err == nil {
			data = append(data, '\n')
		}
	default:
		data, err = result.YAML()
	}

	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
