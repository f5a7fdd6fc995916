// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jstream reads JSON documents and prints the events reported by the
// incremental tokenizer, or with -tree the parsed value.
//
// Usage:
//
//	jstream [flags] [file ...]
//
// If no files are named, jstream reads from standard input.
package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/creachadair/jstream"
	"github.com/creachadair/jstream/ast"
	"github.com/creachadair/jstream/query"
	"github.com/hashicorp/go-hclog"
	"github.com/tailscale/hujson"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "jstream: %v\n", err)
		os.Exit(1)
	}
}

type settings struct {
	bufSize  int
	maxDepth int
	tree     bool
	path     string
	jwcc     bool
	logLevel string
	logJSON  bool
}

func (s *settings) bind(fs *flag.FlagSet) {
	fs.IntVar(&s.bufSize, "bufsize", jstream.DefaultBufferSize, "Input chunk size in bytes")
	fs.IntVar(&s.maxDepth, "max-depth", 0, "Maximum nesting depth (0 means unlimited)")
	fs.BoolVar(&s.tree, "tree", false, "Print the parsed value instead of events")
	fs.StringVar(&s.path, "path", "", "Print the value at this path (implies -tree)")
	fs.BoolVar(&s.jwcc, "jwcc", false, "Accept JSON with comments and trailing commas")
	fs.StringVar(&s.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	fs.BoolVar(&s.logJSON, "log-json", false, "Write log records as JSON")
}

func (s *settings) logLevelValue() (hclog.Level, error) {
	level := s.logLevel
	if strings.EqualFold(level, "err") {
		level = "error"
	}
	if lvl := hclog.LevelFromString(level); lvl != hclog.NoLevel {
		return lvl, nil
	}
	return hclog.NoLevel, fmt.Errorf("invalid log level %q", s.logLevel)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cfg settings
	fs := flag.NewFlagSet("jstream", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: jstream [flags] [file ...]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	cfg.bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	level, err := cfg.logLevelValue()
	if err != nil {
		return err
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:       "jstream",
		Level:      level,
		Output:     stderr,
		JSONFormat: cfg.logJSON,
	})

	var pathQuery query.Path
	if cfg.path != "" {
		pathQuery, err = query.ParsePath(cfg.path)
		if err != nil {
			return fmt.Errorf("invalid -path: %w", err)
		}
		cfg.tree = true
	}

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	if fs.NArg() == 0 {
		return processInput(ctx, &cfg, logger.Named("stdin"), pathQuery, "stdin", stdin, out)
	}
	for _, name := range fs.Args() {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = processInput(ctx, &cfg, logger.Named("file"), pathQuery, name, f, out)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func processInput(ctx context.Context, cfg *settings, logger hclog.Logger, q query.Path, name string, r io.Reader, out *bufio.Writer) error {
	if cfg.jwcc {
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		std, err := hujson.Standardize(data)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		logger.Debug("standardized input", "name", name, "before", len(data), "after", len(std))
		r = bytes.NewReader(std)
	}

	s := jstream.NewStream(r)
	s.SetBufferSize(cfg.bufSize)
	s.SetMaxDepth(cfg.maxDepth)
	logger.Debug("parsing", "name", name, "bufsize", cfg.bufSize, "max-depth", cfg.maxDepth)
	start := time.Now()

	// A path without negative indices is matched against the events, so that
	// only the selected value is built.
	if q != nil && q.Streamable() {
		v, err := query.Find(ctx, s, q)
		if err != nil {
			logger.Error("query failed", "name", name, "path", q.String(), "offset", s.Reader().Offset(), "error", err)
			return fmt.Errorf("%s: %w", name, err)
		}
		logger.Info("found", "name", name, "path", q.String(), "bytes", s.Reader().Offset(), "elapsed", time.Since(start))
		fmt.Fprintln(out, v.JSON())
		return nil
	}

	if cfg.tree {
		v, err := ast.ParseStream(ctx, s)
		if err != nil {
			logger.Error("parse failed", "name", name, "offset", s.Reader().Offset(), "error", err)
			return fmt.Errorf("%s: %w", name, err)
		}
		logger.Info("parsed", "name", name, "bytes", s.Reader().Offset(), "elapsed", time.Since(start))
		if q != nil {
			v, err = q.Eval(v)
			if err != nil {
				return fmt.Errorf("%s: query: %w", name, err)
			}
		}
		fmt.Fprintln(out, v.JSON())
		return nil
	}

	var nev int
	emit := func(e jstream.Event) error {
		nev++
		_, err := fmt.Fprintln(out, e)
		return err
	}
	h := jstream.Funcs{
		OnBeginObject: func() error { return emit(jstream.Event{Kind: jstream.BeginObject}) },
		OnEndObject:   func() error { return emit(jstream.Event{Kind: jstream.EndObject}) },
		OnBeginArray:  func() error { return emit(jstream.Event{Kind: jstream.BeginArray}) },
		OnEndArray:    func() error { return emit(jstream.Event{Kind: jstream.EndArray}) },
		OnKey:         func(key string) error { return emit(jstream.Event{Kind: jstream.Key, Key: key}) },
		OnValue:       func(v jstream.Value) error { return emit(jstream.Event{Kind: jstream.Scalar, Value: v}) },
	}
	if err := s.Parse(ctx, h); err != nil {
		logger.Error("parse failed", "name", name, "offset", s.Reader().Offset(), "error", err)
		return fmt.Errorf("%s: %w", name, err)
	}
	logger.Info("done", "name", name, "events", nev, "bytes", s.Reader().Offset(), "elapsed", time.Since(start))
	return nil
}
