// Command itemize reads UTF-8 text on stdin and prints one report per
// script run.
//
// Usage:
//
//	itemize [-config file] [-format text|json] [-dir ltr|rtl|auto] < input.txt
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

	"github.com/gogpu/itemize"
	"github.com/gogpu/itemize/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.LookupEnv)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer,
	lookupEnv func(string) (string, bool)) int {
	fs := flag.NewFlagSet("itemize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "TOML or YAML configuration file")
		bufferSize = fs.Int("buffer", 0, "read chunk size in bytes")
		direction  = fs.String("dir", "", "base direction: ltr, rtl or auto")
		language   = fs.String("lang", "", "default BCP 47 language tag")
		format     = fs.String("format", "", "output format: text or json")
		invalid    = fs.String("invalid", "", "ill-formed UTF-8 handling: fail or replace")
		noFonts    = fs.Bool("no-fonts", false, "disable font resolution")
		verbose    = fs.Bool("v", false, "log diagnostics to stderr")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *verbose {
		itemize.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return fail(stderr, err)
		}
	}
	if err := cfg.ApplyEnv(lookupEnv); err != nil {
		return fail(stderr, err)
	}

	// Flags override the file and the environment.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "buffer":
			cfg.BufferSize = *bufferSize
			cfg.MaxBufferSize = max(cfg.MaxBufferSize, *bufferSize)
		case "dir":
			cfg.Direction = *direction
		case "lang":
			cfg.Language = *language
		case "format":
			cfg.Format = *format
		case "invalid":
			cfg.Invalid = *invalid
		case "no-fonts":
			cfg.Fonts.Enabled = !*noFonts
		}
	})

	opts, err := cfg.Options()
	if err != nil {
		return fail(stderr, err)
	}

	resolver, err := cfg.NewResolver()
	if err != nil {
		return fail(stderr, err)
	}
	if resolver != nil {
		defer func() { _ = resolver.Close() }()
		opts = append(opts, itemize.WithResolver(resolver))
	}

	emitter, err := itemize.NewEmitter(cfg.Format, stdout)
	if err != nil {
		return fail(stderr, err)
	}

	if err := itemize.NewPipeline(emitter, opts...).Run(ctx, stdin); err != nil {
		return fail(stderr, err)
	}
	return 0
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "ERROR: %v\n", err)
	return 1
}
