// Command asm374 assembles and disassembles ELEC374 W23 CPU instructions, one per line.
//
// Lines of exactly 8 hexadecimal digits are disassembled; any other line is assembled. Input is
// read from the named files (processed concurrently, printed in order) or from stdin, so asm374
// can be used as a translate filter for waveform viewers:
//
//	$ echo 'ldi r2, 0x39(r1)' | asm374
//	09080039
//	$ echo 09080039 | asm374 -layout
//	ldi r2, 57(r1)
//	Op:00001|Ra:0010|Rb:0001|Unk:?|C:000000000000111001
//	I Op=ldi Ra=r2 Rb=r1 C=57
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	asm "github.com/pgaskin/ASM374"
)

var program = filepath.Base(os.Args[0])

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet(program, flag.ContinueOnError)
	fset.SetOutput(stderr)
	var (
		configPath = fset.String("config", "", "Read options from this TOML file (default $XDG_CONFIG_HOME/asm374/config.toml).")
		debug      = fset.Bool("debug", false, "Dump decoded instructions to stderr.")
	)
	fset.Bool("explain", false, "Explain instructions instead of assembling them.")
	fset.Bool("check", false, "Check disassembled words for illegal encodings.")
	fset.Bool("layout", false, "Show the bit layout of disassembled words.")
	fset.Bool("echo", false, "Echo lines which fail, even when interactive.")
	fset.Bool("v", false, "Log at debug level.")
	fset.String("format", "hex", "Output format for assembled words (hex or bin).")
	fset.String("features", "", "Comma-separated instruction groups to enable (default all).")
	fset.Usage = func() {
		fmt.Fprintf(stderr, "Usage:\n  %s [OPTIONS] [FILE...]\n\nOptions:\n", program)
		fset.PrintDefaults()
	}
	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	path, required := *configPath, *configPath != ""
	if !required {
		path = defaultConfigPath()
	}
	cfg, err := loadConfig(path, required)
	if err != nil {
		log.Error(err)
		return 2
	}
	cfg.applyFlags(fset)
	if err := cfg.validate(); err != nil {
		log.Error(err)
		return 2
	}
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)
	log.WithField("config", path).Debug("loaded configuration")

	if err := selfCheck(); err != nil {
		log.WithError(err).Error("self-check failed")
		return 1
	}

	enabled, _ := cfg.features()
	a := asm.NewAssembler()
	a.SetFeatures(enabled)

	f := &filter{asm: a, cfg: cfg, log: log, echo: cfg.Echo}
	if *debug {
		f.debug = stderr
	}

	var failed int
	if fset.NArg() == 0 {
		interactive := isTerminalReader(stdin)
		f.echo = cfg.Echo || !interactive
		if interactive && cfg.Format != "bin" {
			f.prompt = stderr
		}
		n, err := f.run(ctx, "<stdin>", stdin, stdout)
		if err != nil {
			log.Error(err)
			return 1
		}
		failed = n
	} else {
		f.echo = true
		n, err := runFiles(ctx, f, fset.Args(), stdout)
		if err != nil {
			log.Error(err)
			return 1
		}
		failed = n
	}
	if failed != 0 {
		log.WithField("failed", failed).Debug("some lines failed")
		return 1
	}
	return 0
}

// Process files concurrently, writing the output of each in order.
func runFiles(ctx context.Context, f *filter, names []string, w io.Writer) (int, error) {
	outs := make([]bytes.Buffer, len(names))
	fails := make([]int, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		g.Go(func() error {
			file, err := os.Open(name)
			if err != nil {
				return err
			}
			defer file.Close()
			fails[i], err = f.run(ctx, name, file, &outs[i])
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var failed int
	for i := range names {
		if _, err := outs[i].WriteTo(w); err != nil {
			return failed, err
		}
		failed += fails[i]
	}
	return failed, nil
}

// Make sure the instruction table is sane before trusting it with input.
func selfCheck() error {
	w, err := asm.Assemble("nop")
	if err != nil {
		return err
	}
	if w != 0xD0000000 {
		return fmt.Errorf("nop assembled to %v", w)
	}
	s, err := asm.Disassemble(w)
	if err != nil {
		return err
	}
	if s != "nop" {
		return fmt.Errorf("%v disassembled to %q", w, s)
	}
	return nil
}

// Check if r is a terminal.
func isTerminalReader(r io.Reader) bool {
	file, ok := r.(*os.File)
	return ok && isTerminal(int(file.Fd()))
}
