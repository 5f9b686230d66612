// Command samplesensor reads one soil sample per line and prints the reflex
// decision for each.
//
// Usage:
//
//	samplesensor                  read samples from standard input
//	samplesensor -file <filename> read samples from filename
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/vinom-rover/config"
	logger "github.com/beka-birhanu/vinom-rover/infrastruture/log"
	"github.com/beka-birhanu/vinom-rover/rover/grid"
	"github.com/beka-birhanu/vinom-rover/rover/stream"
	"go.uber.org/zap"
)

const usage = "Usage: samplesensor -file <filename>"

var errUsage = errors.New(usage)

func main() {
	if err := run(config.Load(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(cfg config.Config, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	sensorLogger, err := logger.NewWithLevel("SENSOR", config.ColorCyan, stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Creating logger: %v\n", err)
		return err
	}
	defer func() {
		_ = sensorLogger.Sync()
	}()

	var src io.Reader
	switch {
	case len(args) == 0:
		src = stdin
	case len(args) == 2 && args[0] == "-file":
		f, err := grid.Open(args[1])
		if err != nil {
			sensorLogger.Error("Opening samples", zap.Error(err))
			return err
		}
		defer f.Close()
		src = f
	default:
		fmt.Fprintln(stderr, usage)
		return errUsage
	}

	out := bufio.NewWriter(stdout)
	reader := stream.NewReader(src)
	count := 0
	for {
		sample, ok, err := reader.Next()
		if err != nil {
			_ = out.Flush()
			sensorLogger.Error("Reading samples", zap.Int("read", count), zap.Error(err))
			return err
		}
		if !ok {
			break
		}
		count++
		fmt.Fprintf(out, "Perceived: %d Action: %s\n", sample.Value(), stream.Reflex(sample))
	}

	sensorLogger.Debug("Samples processed", zap.Int("count", count))
	return out.Flush()
}
