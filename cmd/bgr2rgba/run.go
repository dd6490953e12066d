package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gogpu/pixconv"
	"github.com/spf13/cobra"
)

// 4K UHD.
const (
	width  = 3840
	height = 2160
)

const (
	msgOK    = "Executed!! Results OK."
	msgNotOK = "Executed!! Results NOT OK."
)

type runOptions struct {
	verbose    bool
	workers    int
	sequential bool
	debug      bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "bgr2rgba",
		Short: "Convert a 4K BGR test pattern to RGBA in parallel and verify it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(out, cmd.ErrOrStderr(), opts, width, height)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print the executing worker for every pixel")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Worker pool size (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&opts.sequential, "sequential", false, "Use the single-goroutine reference conversion")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging on stderr")

	return cmd
}

// run generates, converts and reports. Diagnostics from --debug go to errOut.
func run(out, errOut io.Writer, opts runOptions, w, h int) error {
	if opts.debug {
		pixconv.SetLogger(slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer pixconv.SetLogger(nil)
	}

	src, err := pixconv.GenerateBars(w, h)
	if err != nil {
		return fmt.Errorf("generating pattern: %w", err)
	}

	dst, err := convert(out, opts, src)
	if err != nil {
		return fmt.Errorf("converting: %w", err)
	}

	return report(out, dst, src)
}

// report verifies dst against src and prints the result line.
func report(out io.Writer, dst *pixconv.Buffer[pixconv.Pixel4], src *pixconv.Buffer[pixconv.Pixel3]) error {
	if pixconv.Verify(dst, src) {
		_, err := fmt.Fprintln(out, msgOK)
		return err
	}

	pixconv.Logger().Warn("verification failed", "mismatches", pixconv.CountMismatches(dst, src), "pixels", src.Len())
	_, err := fmt.Fprintln(out, msgNotOK)
	return err
}

func convert(out io.Writer, opts runOptions, src *pixconv.Buffer[pixconv.Pixel3]) (*pixconv.Buffer[pixconv.Pixel4], error) {
	if opts.sequential {
		dst, err := pixconv.NewBuffer[pixconv.Pixel4](src.Width(), src.Height())
		if err != nil {
			return nil, err
		}
		return dst, pixconv.ConvertSequential(dst, src)
	}

	convOpts := []pixconv.Option{pixconv.WithWorkers(opts.workers)}
	var sink *pixconv.WriterSink
	if opts.verbose {
		sink = pixconv.NewWriterSink(out)
		convOpts = append(convOpts, pixconv.WithSink(sink))
	}

	c := pixconv.NewConverter(convOpts...)
	defer c.Close()

	dst, err := c.Convert(src)
	if err != nil {
		return nil, err
	}
	if sink != nil && sink.Err() != nil {
		pixconv.Logger().Warn("worker diagnostics truncated", "err", sink.Err())
	}
	return dst, nil
}
