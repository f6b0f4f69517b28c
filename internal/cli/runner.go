package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// Options tune the line loop.
type Options struct {
	Name   string // assistant name for the welcome banner
	Prompt string // printed before each read; empty for none
	Echo   bool   // repeat each line as "Command entered: ..."
}

// Runner feeds lines from an input source to a Session until bye.
type Runner struct {
	session *Session
	in      io.Reader
	out     io.Writer
	opt     Options
}

func NewRunner(session *Session, in io.Reader, out io.Writer, opt Options) *Runner {
	return &Runner{session: session, in: in, out: out, opt: opt}
}

// Run greets the user and processes lines until a well-formed bye.
// Exhausted input is handled once as a blank line, then Run returns nil.
// Cancellation is checked between lines.
func (r *Runner) Run(ctx context.Context) error {
	p := r.session.Presenter()
	if err := r.session.Emit(p.Welcome(r.opt.Name)); err != nil {
		return err
	}

	scanner := bufio.NewScanner(r.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.opt.Prompt != "" {
			if _, err := fmt.Fprint(r.out, r.opt.Prompt); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}

		line, more := "", scanner.Scan()
		if more {
			line = scanner.Text()
		} else if err := scanner.Err(); err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		if r.opt.Echo {
			if err := r.session.Emit(p.Echo(line)); err != nil {
				return err
			}
		}

		state, err := r.session.Execute(line)
		switch {
		case errors.Is(err, ErrUnrecognizedCommand):
			if err := r.session.Emit(p.Unrecognized()); err != nil {
				return err
			}
		case err != nil:
			return err
		}

		if state == Stopped || !more {
			return nil
		}
	}
}
