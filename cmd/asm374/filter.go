package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	asm "github.com/pgaskin/ASM374"
	"github.com/pgaskin/ASM374/disasm"
)

// A filter translates a stream of lines, one instruction per line. Lines of exactly 8
// hexadecimal digits are disassembled; anything else is assembled (or explained).
type filter struct {
	asm *asm.Assembler
	cfg *Config
	log *logrus.Logger

	echo   bool      // echo failing lines to keep the output aligned with the input
	prompt io.Writer // where to print a prompt before each line, if interactive
	debug  io.Writer // where to dump decoded instructions, if any
}

// Dumps the decoded fields rather than the canonical text the Stringers would give.
var dump = spew.ConfigState{DisableMethods: true, Indent: "\t"}

// Run the filter over r, writing to w. It returns the number of lines which failed.
func (f *filter) run(ctx context.Context, name string, r io.Reader, w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	var failed int
	sc := bufio.NewScanner(r)
	for n := 1; ; n++ {
		if f.prompt != nil {
			fmt.Fprint(f.prompt, "> ")
		}
		if !sc.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return failed, err
		}
		log := f.log.WithFields(logrus.Fields{
			"file": name,
			"line": n,
		})
		if !f.line(bw, log, sc.Text()) {
			failed++
		}
		if f.prompt != nil {
			bw.Flush()
		}
	}
	if err := sc.Err(); err != nil {
		return failed, fmt.Errorf("read %s: %w", name, err)
	}
	return failed, bw.Flush()
}

// Process a single line, returning false if it failed.
func (f *filter) line(w *bufio.Writer, log *logrus.Entry, line string) bool {
	text := strings.TrimSpace(line)
	if text == "" {
		if f.cfg.Format != "bin" {
			w.WriteByte('\n')
		}
		return true
	}
	log = log.WithField("input", text)
	if word, err := asm.ParseWord(text); err == nil {
		return f.word(w, log, word)
	}
	return f.text(w, log, line, text)
}

func (f *filter) word(w *bufio.Writer, log *logrus.Entry, word asm.Word) bool {
	if f.cfg.Format == "bin" {
		w.Write(disasm.Append(nil, word))
		return true
	}

	ok := true
	inst, _ := asm.Decode(word)
	if f.debug != nil {
		dump.Fdump(f.debug, inst)
	}
	out, err := asm.Disassemble(word)
	if err != nil {
		report(log, err)
		ok = false
	}
	if f.cfg.Explain {
		if s := inst.Explain(); s != "" {
			out = s
		}
	}
	fmt.Fprintln(w, out)

	if f.cfg.Layout {
		layout, _ := asm.ExplainEncoding(word)
		fmt.Fprintln(w, layout)
	}
	if f.cfg.Check {
		for _, d := range asm.CheckAll(word) {
			if errors.Is(d, asm.ErrUndefinedOpcode) {
				continue // already reported by Disassemble
			}
			report(log, d)
			if !d.IsWarning() {
				ok = false
			}
		}
	}
	return ok
}

func (f *filter) text(w *bufio.Writer, log *logrus.Entry, line, text string) bool {
	if f.cfg.Explain {
		prose, err := f.asm.Explain(text)
		if err != nil {
			report(log, err)
			if prose == "" {
				f.fail(w, line)
				return false
			}
		}
		fmt.Fprintln(w, prose)
		return err == nil
	}

	word, err := f.asm.Assemble(text)
	if err != nil {
		report(log, err)
		f.fail(w, line)
		return false
	}
	if f.debug != nil {
		inst, _ := asm.Decode(word)
		dump.Fdump(f.debug, inst)
	}
	if f.cfg.Format == "bin" {
		w.Write(disasm.Append(nil, word))
	} else {
		fmt.Fprintln(w, word)
	}
	return true
}

// Keep the output aligned with the input after a failure.
func (f *filter) fail(w *bufio.Writer, line string) {
	if f.echo && f.cfg.Format != "bin" {
		fmt.Fprintln(w, line)
	}
}

// Log a diagnostic at the level matching its severity.
func report(log *logrus.Entry, err error) {
	var d *asm.Diagnostic
	if !errors.As(err, &d) {
		log.Error(err)
		return
	}
	log = log.WithField("kind", d.Kind.Error())
	if d.Pos.IsValid() {
		log = log.WithField("column", d.Pos.Column())
	}
	if d.IsWarning() {
		log.Warn(d.Msg)
	} else {
		log.Error(d.Msg)
	}
}
