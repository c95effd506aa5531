package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// FanOutWriter writes every log line to all of its sinks. A failing sink
// does not stop the others; its error is combined into the returned one.
type FanOutWriter struct {
	sinks []io.Writer
}

func NewFanOutWriter(sinks ...io.Writer) *FanOutWriter {
	fw := &FanOutWriter{}
	for _, s := range sinks {
		if s != nil {
			fw.sinks = append(fw.sinks, s)
		}
	}
	return fw
}

func (fw *FanOutWriter) Sinks() int {
	return len(fw.sinks)
}

// Write reports len(p) when at least one sink took the whole line, so the
// logger keeps going while any sink is healthy.
func (fw *FanOutWriter) Write(p []byte) (int, error) {
	var (
		err       error
		delivered bool
	)
	for _, s := range fw.sinks {
		n, werr := s.Write(p)
		if werr == nil && n < len(p) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		delivered = true
	}
	if !delivered {
		return 0, err
	}
	return len(p), err
}
