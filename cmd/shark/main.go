// Package main implements the shark CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/quangDecember/Shark/internal/cli"
	"github.com/quangDecember/Shark/internal/fileset"
	"github.com/quangDecember/Shark/internal/interp"
	"github.com/quangDecember/Shark/internal/logging"
	"github.com/quangDecember/Shark/internal/pipeline"
)

func main() {
	code := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := cli.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			_, _ = fmt.Fprintln(stdout, err.Error())
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err.Error())
		return 1
	}

	logger := logging.New(logging.Options{
		Verbose: opts.Verbose,
		Writer:  stderr,
	})

	env := pipeline.Environment{
		Logger:     logger,
		FSResolver: fileset.NewOSResolver,
		Writer:     pipeline.NewOSWriter(),
	}

	pipe := pipeline.Pipeline{Env: env}
	summary, runErr := pipe.Run(ctx, pipeline.RunOptions{
		ConfigPath:   opts.ConfigPath,
		OutOverride:  opts.Out,
		DryRun:       opts.DryRun,
		ListKeys:     opts.ListKeys,
		StrictConfig: opts.StrictConfig,
	})

	if runErr != nil {
		_, _ = fmt.Fprintln(stderr, runErr.Error())
		var writeErr *pipeline.WriteError
		if errors.As(runErr, &writeErr) {
			return 2
		}
		return 1
	}

	if opts.ListKeys {
		printKeySummary(stdout, summary.Keys)
		return 0
	}

	if opts.DryRun {
		for _, file := range summary.Files {
			_, _ = fmt.Fprintln(stdout, file.Path)
		}
		return 0
	}

	return 0
}

func printKeySummary(w io.Writer, keys []pipeline.KeyInfo) {
	for _, info := range keys {
		_, _ = fmt.Fprintf(w, "%s %s\n", info.Key, formatParams(info.Params))
	}
}

func formatParams(params []interp.Type) string {
	if len(params) == 0 {
		return "params: none"
	}
	parts := make([]string, 0, len(params))
	for _, param := range params {
		parts = append(parts, param.SwiftName())
	}
	return "params: " + strings.Join(parts, ", ")
}
