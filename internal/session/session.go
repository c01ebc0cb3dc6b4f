// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session renders the conversion screen on a terminal. It owns the
// ConversionState for the lifetime of one session and turns each input line
// into a convert.Event:
//
//	<text>          replace the text field with <text>
//	:from <unit>    select the source unit
//	:to <unit>      select the target unit
//	:reset          reset the screen
//	:units          list the picker entries
//	:state          print the state as YAML
//	:quit           end the session
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/lengthconv/internal/convert"
	"github.com/pdiddy/lengthconv/pkg/types"
)

const (
	title       = "Length Converter"
	resultTitle = "Converted Length"
	placeholder = "Number"
	splashTitle = "Length Conversion"
)

// Screen is one interactive conversion session.
type Screen struct {
	engine      *convert.Engine
	state       types.ConversionState
	out         io.Writer
	log         zerolog.Logger
	splashDelay time.Duration
}

// Option configures a Screen.
type Option func(*Screen)

// WithLogger sets the diagnostic logger (default: disabled).
func WithLogger(l zerolog.Logger) Option {
	return func(s *Screen) {
		s.log = l
	}
}

// WithSplashDelay sets how long Splash blocks. Zero skips the splash.
func WithSplashDelay(d time.Duration) Option {
	return func(s *Screen) {
		s.splashDelay = d
	}
}

// New returns a Screen that writes to out and starts from engine.Initial().
func New(engine *convert.Engine, out io.Writer, opts ...Option) *Screen {
	s := &Screen{
		engine: engine,
		state:  engine.Initial(),
		out:    out,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state.
func (s *Screen) State() types.ConversionState {
	return s.state
}

// Splash shows the banner and waits for the splash delay or ctx.
func (s *Screen) Splash(ctx context.Context) error {
	if s.splashDelay <= 0 {
		return nil
	}
	fmt.Fprintf(s.out, "\n    %s\n\n", splashTitle)

	timer := time.NewTimer(s.splashDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Run shows the splash, renders the screen, and handles lines from in until
// EOF, ":quit", or ctx is done. Cancelling ctx returns immediately, even
// while a read is pending; the pending read is abandoned.
func (s *Screen) Run(ctx context.Context, in io.Reader) error {
	if err := s.Splash(ctx); err != nil {
		return err
	}
	s.Render()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, errc := readLines(ctx, in)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil && !errors.Is(err, context.Canceled) {
					return fmt.Errorf("reading input: %w", err)
				}
				return ctx.Err()
			}
			if quit := s.Handle(line); quit {
				return nil
			}
		}
	}
}

// readLines scans in on its own goroutine. errc receives exactly one value
// before lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// Handle processes one input line and reports whether the session should
// end.
func (s *Screen) Handle(line string) bool {
	if !strings.HasPrefix(line, ":") {
		s.apply(convert.Edit{Text: line})
		return false
	}

	cmd, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "from", "to":
		u, err := types.ParseLengthUnit(arg)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return false
		}
		if cmd == "from" {
			s.apply(convert.SelectSource{Unit: u})
		} else {
			s.apply(convert.SelectTarget{Unit: u})
		}
	case "reset":
		s.apply(convert.Reset{})
	case "units":
		labels := make([]string, 0, len(types.AllUnits()))
		for _, u := range types.AllUnits() {
			labels = append(labels, u.Label())
		}
		fmt.Fprintln(s.out, strings.Join(labels, " "))
	case "state":
		data, err := yaml.Marshal(&s.state)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return false
		}
		fmt.Fprint(s.out, string(data))
	case "quit", "q":
		return true
	default:
		fmt.Fprintf(s.out, "error: unknown command %q (try :from, :to, :reset, :units, :state, :quit)\n", cmd)
	}
	return false
}

func (s *Screen) apply(ev convert.Event) {
	next, err := s.engine.Apply(s.state, ev)
	switch {
	case errors.Is(err, convert.ErrInvalidNumericInput):
		s.log.Debug().Str("event", fmt.Sprintf("%T", ev)).Err(err).Str("kept", next.RawInput).Msg("edit rejected")
	case err != nil:
		s.log.Warn().Err(err).Msg("event failed")
	default:
		s.log.Debug().Str("event", fmt.Sprintf("%T", ev)).Str("raw_input", next.RawInput).Float64("result", next.Result).Msg("event applied")
	}
	s.state = next
	s.Render()
}

// Render writes the current screen.
func (s *Screen) Render() {
	field := s.state.RawInput
	if field == "" {
		field = placeholder
	}
	underline := strings.Repeat("─", 9)
	if s.state.Rejected {
		underline = strings.Repeat("!", 9)
	}

	fmt.Fprintf(s.out, "%s\n", title)
	fmt.Fprintf(s.out, "  %-9s %s\n", field, s.state.SourceUnit.Label())
	fmt.Fprintf(s.out, "  %s\n", underline)
	fmt.Fprintf(s.out, "%s\n", resultTitle)
	fmt.Fprintf(s.out, "  %s %s\n", s.engine.FormatResult(s.state), s.state.TargetUnit.Label())
}
