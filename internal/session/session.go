// Package session implements the interactive test protocol: numbers are read
// as whitespace-separated words and every codec of package bignum is reported
// as a labeled line, so an external driver can check them against its own
// arithmetic.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"bignum/internal/bignum"
	"bignum/internal/trace"
)

// NoLongConstructor is the marker drivers look for when a value has no int64 form.
const NoLongConstructor = "no long constructor"

// Options controls optional session output.
type Options struct {
	// Prompt is written on its own line before every read; empty disables it.
	Prompt string
	// Poly adds a bnPoly= line with the base-256 polynomial of each value.
	Poly bool
	// Color highlights err= lines.
	Color bool
}

// Session holds the state of one protocol run.
type Session struct {
	in    *bufio.Scanner
	out   *bufio.Writer
	opts  Options
	errFn func(a ...interface{}) string

	// pending is the first operand of the current pair.
	pending *bignum.BigInt
	// Parsed counts successfully parsed words.
	Parsed int
	// Failed counts words rejected by the decimal codec.
	Failed int
}

// New creates a session reading words from in and writing the protocol to out.
func New(in io.Reader, out io.Writer, opts Options) *Session {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	errColor := color.New(color.FgRed, color.Bold)
	if opts.Color {
		errColor.EnableColor()
	} else {
		errColor.DisableColor()
	}

	return &Session{
		in:    sc,
		out:   bufio.NewWriter(out),
		opts:  opts,
		errFn: errColor.SprintFunc(),
	}
}

// Run is a convenience wrapper for New(in, out, opts).Run(ctx).
func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	return New(in, out, opts).Run(ctx)
}

// Run processes words until q/Q, end of input, or cancellation.
// Malformed numbers are reported and skipped; only I/O errors and
// cancellation end the session with an error.
func (s *Session) Run(ctx context.Context) (err error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeSession, "session", 0)
	defer func() {
		span.WithExtra("parsed", fmt.Sprint(s.Parsed)).WithExtra("failed", fmt.Sprint(s.Failed))
		if err != nil {
			span.Fail(err)
			return
		}
		span.End("")
	}()

	for {
		if err := ctx.Err(); err != nil {
			return errors.Join(err, s.out.Flush())
		}
		if err := s.prompt(); err != nil {
			return err
		}
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return errors.Join(fmt.Errorf("read input: %w", err), s.out.Flush())
			}
			trace.Point(tracer, trace.ScopeSession, "eof", "", span.ID())
			return s.out.Flush()
		}
		word := s.in.Text()
		if strings.EqualFold(word, "q") {
			trace.Point(tracer, trace.ScopeSession, "quit", word, span.ID())
			return s.out.Flush()
		}
		s.handleWord(tracer, span.ID(), word)
		if err := s.out.Flush(); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
}

func (s *Session) prompt() error {
	if s.opts.Prompt == "" {
		return nil
	}
	s.out.WriteString(s.opts.Prompt)
	s.out.WriteByte('\n')
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// handleWord writes the protocol lines for one word. Output errors are
// sticky in the bufio.Writer and surface on the next Flush.
func (s *Session) handleWord(tracer trace.Tracer, parent uint64, word string) {
	span := trace.Begin(tracer, trace.ScopeWord, "word", parent).WithExtra("orig", word)

	s.field("orig", word)

	op := trace.Begin(tracer, trace.ScopeOp, "parse", span.ID())
	v, err := bignum.ParseInt(word)
	if err != nil {
		op.Fail(err)
		s.Failed++
		s.out.WriteString(s.errFn("err=" + err.Error()))
		s.out.WriteByte('\n')
		span.End("rejected")
		return
	}
	op.WithExtra("bytes", fmt.Sprint(v.Len())).End("")
	s.Parsed++

	s.field("bn", bignum.FormatInt(v))
	if s.opts.Poly {
		s.field("bnPoly", bignum.FormatPoly(v))
	}
	s.longField(tracer, span.ID(), v)

	if s.pending == nil {
		s.pending = &v
		span.End("first")
		return
	}

	first := *s.pending
	s.pending = nil
	s.field("bn2", bignum.FormatInt(v))

	op = trace.Begin(tracer, trace.ScopeOp, "add", span.ID())
	sum := bignum.IntAdd(first, v)
	op.WithExtra("bytes", fmt.Sprint(sum.Len())).End("")
	s.field("bn1+bn2", bignum.FormatInt(sum))
	span.End("pair")
}

func (s *Session) longField(tracer trace.Tracer, parent uint64, v bignum.BigInt) {
	op := trace.Begin(tracer, trace.ScopeOp, "int64", parent)
	n, err := v.Int64()
	if err != nil {
		// Out of range is an expected outcome, not a trace failure.
		op.End(err.Error())
		fmt.Fprintf(s.out, "bnLong: %s for %s\n", NoLongConstructor, bignum.FormatInt(v))
		return
	}
	op.End("")
	s.field("bnLong", bignum.FormatInt(bignum.IntFromInt64(n)))
}

func (s *Session) field(name, value string) {
	s.out.WriteString(name)
	s.out.WriteByte('=')
	s.out.WriteString(value)
	s.out.WriteByte('\n')
}
