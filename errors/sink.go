package errors

import "strings"

// Sink receives recoverable diagnostics. The lexer and parser call it
// before they drop any malformed input.
type Sink interface {
	Report(err error)
}

type SinkFunc func(err error)

func (f SinkFunc) Report(err error) { f(err) }

// Discard drops every diagnostic.
var Discard Sink = SinkFunc(func(error) {})

// Diagnostics collects reported errors in order.
type Diagnostics struct {
	Errors []error
}

func (d *Diagnostics) Report(err error) {
	d.Errors = append(d.Errors, err)
}

func (d *Diagnostics) Len() int {
	return len(d.Errors)
}

func (d *Diagnostics) Reset() {
	d.Errors = d.Errors[:0]
}

// Err returns nil when nothing was reported, otherwise a single error
// listing every diagnostic on its own line.
func (d *Diagnostics) Err() error {
	if len(d.Errors) == 0 {
		return nil
	}
	return List(d.Errors)
}

type List []error

func (l List) Error() string {
	msgs := make([]string, 0, len(l))
	for _, err := range l {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

// Tee reports to every sink in turn.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(err error) {
		for _, s := range sinks {
			s.Report(err)
		}
	})
}
