// Command rover runs the sensing rover over a grid read from a file or stdin
// and prints the observation trace.
//
// Usage:
//
//	rover                  read the grid from standard input
//	rover -file <filename> read the grid from filename
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/vinom-rover/config"
	logger "github.com/beka-birhanu/vinom-rover/infrastruture/log"
	"github.com/beka-birhanu/vinom-rover/rover"
	"github.com/beka-birhanu/vinom-rover/rover/grid"
	"github.com/beka-birhanu/vinom-rover/service"
	"go.uber.org/zap"
)

const usage = "Usage: rover -file <filename>"

var errUsage = errors.New(usage)

func main() {
	if err := run(config.Load(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes one traversal. Diagnostics go to stderr; stdout carries only the trace.
func run(cfg config.Config, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	appLogger, err := logger.NewWithLevel("ROVER", config.ColorGreen, stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Creating logger: %v\n", err)
		return err
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	src, closeSrc, err := openSource(args, stdin)
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, usage)
		} else {
			appLogger.Error("Opening grid", zap.Error(err))
		}
		return err
	}
	defer closeSrc()

	explorer, err := service.NewExplorationService(appLogger, &service.Options{StepFactor: cfg.StepFactor})
	if err != nil {
		appLogger.Error("Creating exploration service", zap.Error(err))
		return err
	}

	exploration, err := explorer.Explore(context.Background(), src)
	if err != nil {
		appLogger.Error("Loading grid", zap.Error(err))
		return err
	}

	if err := rover.WriteTrace(stdout, &exploration.Report); err != nil {
		appLogger.Error("Writing trace", zap.Error(err))
		return err
	}
	return nil
}

// openSource picks the grid source from the command-line arguments.
func openSource(args []string, stdin io.Reader) (io.Reader, func(), error) {
	switch {
	case len(args) == 0:
		return stdin, func() {}, nil
	case len(args) == 2 && args[0] == "-file":
		f, err := grid.Open(args[1])
		if err != nil {
			return nil, nil, err
		}
		return f, func() { _ = f.Close() }, nil
	default:
		return nil, nil, errUsage
	}
}
