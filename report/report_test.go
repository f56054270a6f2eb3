package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridorbit/enumerate"
	"github.com/katalvlaran/gridorbit/gridgraph"
	"github.com/katalvlaran/gridorbit/report"
)

func run(t *testing.T, size int, opts ...enumerate.Option) *enumerate.Result {
	t.Helper()
	res, err := enumerate.Enumerate(size, opts...)
	require.NoError(t, err)
	return res
}

// TestWrite_Plain checks the default layout for a 2×2 board.
func TestWrite_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, run(t, 2)))
	want := strings.Join([]string{
		"======================",
		"L = 2",
		"n = 0,\tcount = 1",
		"n = 1,\tcount = 1",
		"n = 2,\tcount = 2",
		"n = 3,\tcount = 1",
		"n = 4,\tcount = 1",
		"sum_count = 6",
		"raw subsets = 16",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

// TestWrite_Columns enables every optional column.
func TestWrite_Columns(t *testing.T) {
	res := run(t, 4, enumerate.WithConnectivity(gridgraph.Conn4))
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, res, report.WithPlacements(), report.WithOrbitSizes()))
	out := buf.String()
	assert.Contains(t, out, "n = 8,\tcount = 1558,\tconnected4 = 140,\tplacements = 12,870\n")
	assert.Contains(t, out, "sum_count = 7626\n")
	assert.Contains(t, out, "raw subsets = 65,536\n")
	assert.Contains(t, out, "orbits = 1×15 2×59 4×673 8×6879\n")
}

// TestWrite_Drawings renders every class of one cell count.
func TestWrite_Drawings(t *testing.T) {
	res := run(t, 2, enumerate.WithKeepPatterns())
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, res, report.WithDrawings(2)))
	assert.True(t, strings.HasSuffix(buf.String(), strings.Join([]string{
		"classes with n = 2: 2",
		"",
		"#1 (0x3) islands4 = 1",
		"X X",
		". .",
		"",
		"#2 (0x102) islands4 = 2",
		". X",
		"X .",
		"",
	}, "\n")), buf.String())
}

// TestWrite_DrawingsConn8 counts islands with the Result's connectivity:
// the diagonal pair is one island under Conn8.
func TestWrite_DrawingsConn8(t *testing.T) {
	res := run(t, 2, enumerate.WithKeepPatterns(), enumerate.WithConnectivity(gridgraph.Conn8))
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, res, report.WithDrawings(2)))
	out := buf.String()
	assert.Contains(t, out, "n = 2,\tcount = 2,\tconnected8 = 2\n")
	assert.Contains(t, out, "#1 (0x3) islands8 = 1\n")
	assert.Contains(t, out, "#2 (0x102) islands8 = 1\n")
}

// TestWrite_Errors covers invalid inputs.
func TestWrite_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, report.Write(&buf, nil), report.ErrNilResult)
	assert.ErrorIs(t, report.Write(&buf, run(t, 2), report.WithDrawings(1)), report.ErrNoPatterns)

	res := run(t, 2, enumerate.WithKeepPatterns(), enumerate.WithRange(1, 2))
	assert.ErrorIs(t, report.Write(&buf, res, report.WithDrawings(3)), report.ErrDrawRange)

	boom := errors.New("disk full")
	assert.ErrorIs(t, report.Write(failWriter{boom}, res), boom)
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }
