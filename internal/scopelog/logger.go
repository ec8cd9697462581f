// Package scopelog writes human-readable console output where nested units
// of work are indented one unit per nesting level.
//
// A section is opened with Begin, which logs its title at the current depth
// and returns a Scope. Lines logged while the scope is active are indented
// one unit deeper. Scopes must be ended in reverse order of creation:
//
//	sc, err := lg.Begin("Process image")
//	if err != nil {
//		return err
//	}
//	defer sc.End()
//
// The Logger is not safe for concurrent use.
package scopelog

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultIndentUnit is the indentation emitted per nesting level.
const DefaultIndentUnit = "    "

// Logger owns a stack of open scopes and the output stream.
type Logger struct {
	out    io.Writer
	unit   string
	scopes []*Scope
	seq    uint64
}

// Option configures a Logger.
type Option func(*Logger)

// WithIndentUnit replaces the four-space indentation unit. An empty unit
// is ignored.
func WithIndentUnit(unit string) Option {
	return func(l *Logger) {
		if unit != "" {
			l.unit = unit
		}
	}
}

// New returns a Logger writing to w with an empty scope stack.
func New(w io.Writer, opts ...Option) *Logger {
	l := &Logger{out: w, unit: DefaultIndentUnit}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Log formats the message and writes it, re-flowed through the active
// scope's indentation when one is open.
func (l *Logger) Log(format string, args ...any) error {
	msg, err := Format(format, args...)
	if err != nil {
		return err
	}
	if top := l.active(); top != nil {
		msg = top.reflow(msg)
	}
	return l.write(msg)
}

// Begin logs title at the current depth and then opens a child scope one
// level deeper. An empty title still produces a (blank) line.
func (l *Logger) Begin(title string, args ...any) (*Scope, error) {
	if err := l.Log(title, args...); err != nil {
		return nil, err
	}
	var sc *Scope
	if top := l.active(); top != nil {
		sc = top.child()
	} else {
		sc = l.newScope(1)
	}
	l.scopes = append(l.scopes, sc)
	return sc, nil
}

// Section runs fn inside a scope titled title and always ends the scope,
// whatever fn returns. Errors from fn and from releasing the scope are
// joined.
func (l *Logger) Section(title string, fn func() error, args ...any) (err error) {
	sc, err := l.Begin(title, args...)
	if err != nil {
		return err
	}
	defer func() {
		if endErr := sc.End(); endErr != nil {
			err = errors.Join(err, endErr)
		}
	}()
	return fn()
}

// Depth returns the number of open scopes.
func (l *Logger) Depth() int { return len(l.scopes) }

// Indent returns the prefix applied to lines logged right now.
func (l *Logger) Indent() string {
	if top := l.active(); top != nil {
		return top.indent
	}
	return ""
}

func (l *Logger) active() *Scope {
	if len(l.scopes) == 0 {
		return nil
	}
	return l.scopes[len(l.scopes)-1]
}

func (l *Logger) newScope(depth int) *Scope {
	l.seq++
	return &Scope{
		logger: l,
		id:     l.seq,
		depth:  depth,
		indent: strings.Repeat(l.unit, depth),
	}
}

func (l *Logger) write(msg string) error {
	if _, err := io.WriteString(l.out, msg+"\n"); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// Scope is one open section of a Logger.
type Scope struct {
	logger *Logger
	id     uint64
	depth  int
	indent string
	ended  bool
}

// Depth is the scope's 1-based position in the stack.
func (s *Scope) Depth() int { return s.depth }

// Indent is the prefix written before every line logged in this scope.
func (s *Scope) Indent() string { return s.indent }

// End removes the scope from its logger. The scope must be the active one;
// otherwise ErrScopeOrder is returned and the stack is left untouched.
// Ending a nil scope is a no-op so that a failed Begin can still be
// deferred.
func (s *Scope) End() error {
	if s == nil {
		return nil
	}
	if s.ended {
		return fmt.Errorf("%w: scope %d already ended", ErrScopeOrder, s.id)
	}
	l := s.logger
	top := l.active()
	if top == nil || top.id != s.id {
		return fmt.Errorf("%w: scope %d at depth %d is not active", ErrScopeOrder, s.id, s.depth)
	}
	l.scopes[len(l.scopes)-1] = nil
	l.scopes = l.scopes[:len(l.scopes)-1]
	s.ended = true
	return nil
}

func (s *Scope) child() *Scope {
	return s.logger.newScope(s.depth + 1)
}

// reflow prefixes every non-empty line of msg with the scope's indent.
// "\n", "\r" and "\r\n" terminate lines and are copied unchanged.
func (s *Scope) reflow(msg string) string {
	var sb strings.Builder
	sb.Grow(len(msg) + len(s.indent)*(1+strings.Count(msg, "\n")))
	newLine := true
	for i := 0; i < len(msg); i++ {
		switch c := msg[i]; c {
		case '\r':
			sb.WriteByte('\r')
			if i+1 < len(msg) && msg[i+1] == '\n' {
				sb.WriteByte('\n')
				i++
			}
			newLine = true
		case '\n':
			sb.WriteByte('\n')
			newLine = true
		default:
			if newLine {
				sb.WriteString(s.indent)
				newLine = false
			}
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
