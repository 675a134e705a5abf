package report_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snograph/snograph/graph"
	"github.com/snograph/snograph/report"
	"github.com/snograph/snograph/rf2"
)

// orphansFixture builds a registry with two root concepts (4 and 6) and
// returns its orphan list.
func orphansFixture(t *testing.T) []*graph.Concept {
	t.Helper()
	hasher, err := graph.NewType5Hasher(graph.DefaultHashNamespace)
	require.NoError(t, err)
	r, err := graph.New(rf2.Stated, hasher)
	require.NoError(t, err)

	require.NoError(t, r.Register(rf2.New(3, 4, rf2.IsATypeID, 0, rf2.Stated)))
	require.NoError(t, r.Register(rf2.New(5, 6, rf2.IsATypeID, 0, rf2.Stated)))
	return r.Orphans()
}

func TestWriterSink_EmitsTSVRows(t *testing.T) {
	var buf bytes.Buffer
	sink := report.NewWriterSink(&buf)

	require.NoError(t, sink.Orphans(rf2.Stated, orphansFixture(t)))
	assert.Equal(t, "stated\t4\nstated\t6\n", buf.String())
}

func TestWriterSink_EmptyListWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	sink := report.NewWriterSink(&buf)

	require.NoError(t, sink.Orphans(rf2.Inferred, nil))
	assert.Empty(t, buf.String())
}

func TestLogSink_SingleRootLogsInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	sink := report.NewLogSink(logger)

	orphans := orphansFixture(t)[:1]
	require.NoError(t, sink.Orphans(rf2.Stated, orphans))

	out := buf.String()
	assert.Contains(t, out, "hierarchy root found")
	assert.Contains(t, out, "root=4")
}

func TestLogSink_MultipleOrphansLogEveryID(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	sink := report.NewLogSink(logger)

	require.NoError(t, sink.Orphans(rf2.Stated, orphansFixture(t)))

	out := buf.String()
	assert.Contains(t, out, "multiple concepts have no parent")
	assert.Contains(t, out, "id=4")
	assert.Contains(t, out, "id=6")
}

func TestLogSink_NoOrphansWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	sink := report.NewLogSink(logger)

	require.NoError(t, sink.Orphans(rf2.Inferred, nil))
	assert.Contains(t, buf.String(), "no root concept")
}

func TestMultiSink_FansOut(t *testing.T) {
	var first, second bytes.Buffer
	sink := report.MultiSink{
		report.NewWriterSink(&first),
		report.NewWriterSink(&second),
	}

	require.NoError(t, sink.Orphans(rf2.Stated, orphansFixture(t)))
	assert.Equal(t, first.String(), second.String())
	assert.NotEmpty(t, first.String())
}

// failWriter rejects every write to exercise error propagation.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestWriterSink_PropagatesWriteErrors(t *testing.T) {
	sink := report.NewWriterSink(failWriter{})
	err := sink.Orphans(rf2.Stated, orphansFixture(t))
	require.ErrorIs(t, err, io.ErrClosedPipe)
}
