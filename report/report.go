// Package report delivers hierarchy-verification results to an operator.
//
// The graph registries surface structural defects as data (orphan concept
// lists); this package owns how those lists reach a human. A well-formed
// view has exactly one orphan, the hierarchy root -- anything else is
// reported as a defect in the release content, never treated as fatal.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/snograph/snograph/graph"
	"github.com/snograph/snograph/rf2"
)

// Sink consumes the orphan list produced by verifying one view's hierarchy.
type Sink interface {
	// Orphans reports every concept with no is-a parents in the given
	// view. The slice is sorted by concept id and may be empty.
	Orphans(characteristic rf2.Characteristic, orphans []*graph.Concept) error
}

// LogSink writes orphan reports to a structured logger. The single-root
// case logs at info level; zero or multiple orphans log at warn level, one
// line per concept so operators can grep for ids.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a LogSink on the given logger.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Orphans implements Sink.
func (s *LogSink) Orphans(characteristic rf2.Characteristic, orphans []*graph.Concept) error {
	switch len(orphans) {
	case 1:
		s.logger.Info("hierarchy root found", "characteristic", characteristic, "root", orphans[0].ID())
	case 0:
		s.logger.Warn("no root concept: every concept has a parent", "characteristic", characteristic)
	default:
		s.logger.Warn("multiple concepts have no parent", "characteristic", characteristic, "count", len(orphans))
		for _, c := range orphans {
			s.logger.Warn("orphan concept", "characteristic", characteristic, "id", c.ID())
		}
	}
	return nil
}

// WriterSink emits orphan reports as tab-separated rows
// (characteristic, conceptId) for downstream review tooling.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a WriterSink on w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Orphans implements Sink.
func (s *WriterSink) Orphans(characteristic rf2.Characteristic, orphans []*graph.Concept) error {
	for _, c := range orphans {
		if _, err := fmt.Fprintf(s.w, "%s\t%d\n", characteristic, c.ID()); err != nil {
			return fmt.Errorf("failed to write orphan report: %w", err)
		}
	}
	return nil
}

// MultiSink fans one report out to several sinks, stopping at the first
// failure.
type MultiSink []Sink

// Orphans implements Sink.
func (s MultiSink) Orphans(characteristic rf2.Characteristic, orphans []*graph.Concept) error {
	for _, sink := range s {
		if err := sink.Orphans(characteristic, orphans); err != nil {
			return err
		}
	}
	return nil
}
