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
	"syscall"

	"rtspresp/internal/inspect"
)

func main() {
	configPath := flag.String("config", inspect.DefaultConfigPath, "path to the yaml config file")
	stream := flag.Bool("stream", false, "treat each input as a sequence of responses delimited by Content-Length")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-config path] [-stream] [file ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	config, err := inspect.LoadConfig(*configPath, *configPath == inspect.DefaultConfigPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	inspect.InitLogger(config)

	inspector := inspect.NewInspector(config, os.Stdout)
	inspector.Start()

	// the first SIGINT/SIGTERM abandons the input being read; queued ones are still reported
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	err = run(ctx, inspector, paths, *stream, os.Stdin)
	stop()
	inspector.Stop()

	switch {
	case errors.Is(err, context.Canceled):
		slog.Info("Interrupted, remaining inputs skipped")
		os.Exit(1)
	case err != nil:
		slog.Error("Failed to read input", "err", err)
		os.Exit(1)
	case inspector.Failures() > 0:
		slog.Error("Some responses failed", "failures", inspector.Failures(), "inputs", inspector.Inputs())
		os.Exit(1)
	}
}

// run submits every path ("-" is stdin) and returns early with ctx.Err()
// when ctx is cancelled. A read blocked at that point is left behind.
func run(ctx context.Context, inspector *inspect.Inspector, paths []string, stream bool, stdin io.Reader) error {
	errCh := make(chan error, 1)
	go func() {
		for _, path := range paths {
			if err := submit(inspector, path, stream, stdin); err != nil {
				errCh <- fmt.Errorf("%s: %w", path, err)
				return
			}
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func submit(inspector *inspect.Inspector, path string, stream bool, stdin io.Reader) error {
	name := path
	r := stdin
	if path == "-" {
		name = "stdin"
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	if stream {
		return inspector.SubmitStream(name, r)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return inspector.Submit(name, string(data))
}
