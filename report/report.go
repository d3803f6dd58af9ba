// Package report renders classified identifiers and diagnostics to output
// streams.
package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/viant/identscan/classifier"
)

// Reporter consumes classified identifier records.
type Reporter interface {
	Report(record classifier.Record)
}

// StreamReporter writes Definition and Reference records to Out, one per
// line as tag,name,file,line:column,sourceLineText, and Unknown diagnostics
// to Err. Ignored records are consumed silently. With Debug set, the
// structural path is echoed as a trailing field of each record line.
type StreamReporter struct {
	Out   io.Writer
	Err   io.Writer
	Debug bool

	mu sync.Mutex
}

// NewStreamReporter creates a reporter over the given streams.
func NewStreamReporter(out, errOut io.Writer, debug bool) *StreamReporter {
	return &StreamReporter{Out: out, Err: errOut, Debug: debug}
}

// Report renders one record.
func (r *StreamReporter) Report(record classifier.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch record.Class {
	case classifier.Definition, classifier.Reference:
		if r.Debug && record.Path != "" {
			fmt.Fprintf(r.Out, "%s,%s,%s,%d:%d,%s,%s\n",
				record.Class.Tag(), record.Name, record.File,
				record.Line, record.Col, record.SourceLine, record.Path)
			return
		}
		fmt.Fprintf(r.Out, "%s,%s,%s,%d:%d,%s\n",
			record.Class.Tag(), record.Name, record.File,
			record.Line, record.Col, record.SourceLine)
	case classifier.Unknown:
		fmt.Fprintf(r.Err, "unknown identifier context: %s %s %d:%d %s\n",
			record.Name, record.File, record.Line, record.Col, record.Path)
	}
}

// ReportError renders a per-file failure on the error stream.
func (r *StreamReporter) ReportError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.Err, "%v\n", err)
}

// Collector accumulates records, mainly for tests and aggregation.
type Collector struct {
	mu      sync.Mutex
	Records []classifier.Record
}

// Report appends the record.
func (c *Collector) Report(record classifier.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Records = append(c.Records, record)
}

// ByClass returns the collected records of the given class.
func (c *Collector) ByClass(class classifier.Classification) []classifier.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []classifier.Record
	for _, record := range c.Records {
		if record.Class == class {
			out = append(out, record)
		}
	}
	return out
}

// Named returns the collected records for the given identifier name.
func (c *Collector) Named(name string) []classifier.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []classifier.Record
	for _, record := range c.Records {
		if record.Name == name {
			out = append(out, record)
		}
	}
	return out
}
