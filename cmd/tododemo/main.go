// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command tododemo is an interactive TODO list that exercises the
// interceptor package's full pipeline: coeffect injection, effect
// execution, queue rewriting, and nested dispatch, driven by a
// single-threaded reactor and a stdin-reading bridge goroutine.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/RadicalZephyr/tokio-interceptor/internal/reactor"
	"github.com/RadicalZephyr/tokio-interceptor/internal/tododemo"
)

func main() {
	app := &cli.App{
		Name:  "tododemo",
		Usage: "interactive TODO list over the interceptor pipeline",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "logrus level: trace, debug, info, warn, error"},
			&cli.BoolFlag{Name: "trace", Usage: "export dispatch spans to stdout"},
			&cli.StringFlag{Name: "seed", Usage: "path to a newline-delimited seed-tasks file"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level, err := logrus.ParseLevel(c.String("log-level"))
	if err != nil {
		return errors.Wrapf(err, "parse log level %q", c.String("log-level"))
	}
	logrus.SetLevel(level)

	shutdown, err := setupTracing(c.Context, c.Bool("trace"))
	if err != nil {
		return errors.Wrap(err, "initialize tracing")
	}
	defer shutdown(context.Background())

	initial, err := seedTasks(c.String("seed"))
	if err != nil {
		return errors.Wrap(err, "load seed tasks")
	}

	react := reactor.New()
	go react.Run()
	defer react.Stop()

	demo := tododemo.New(react, os.Stdout, initial)
	demo.Start()

	scanner := bufio.NewScanner(os.Stdin)
	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case err := <-demo.QuitChannel():
			if tododemo.ErrQuit(err) {
				return nil
			}
			return err
		case <-demo.RequestChannel():
			line, ok := <-lines
			if !ok {
				return nil
			}
			demo.DispatchLine(line)
		}
	}
}

func setupTracing(ctx context.Context, enabled bool) (func(context.Context) error, error) {
	if !enabled {
		return func(context.Context) error { return nil }, nil
	}

	exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

func seedTasks(path string) (tododemo.List, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var tasks tododemo.List
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		text := scanner.Text()
		if text == "" {
			continue
		}
		tasks = append(tasks, tododemo.Task{Text: text})
	}
	return tasks, scanner.Err()
}
