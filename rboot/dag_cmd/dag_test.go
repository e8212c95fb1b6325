package dag_cmd

import (
	"strings"
	"testing"

	"github.com/rhonix/rboot/mvdag"
	"github.com/rhonix/rboot/util/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDagCmd(t *testing.T) {
	log := testutil.NewNamedLogger("dag_cmd", zapcore.DebugLevel)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "dag.txt", []byte("a b\nb c\na c\nx c\n"), 0644))

	dag, err := readDAG(fs, "dag.txt", log)
	require.NoError(t, err)
	require.EqualValues(t, 4, dag.NumEdges())

	ln, err := dagLines(dag)
	require.NoError(t, err)
	s := ln.String()
	require.Contains(t, s, "vertices: 4, edges: 4")
	require.Contains(t, s, "  3: c")
	require.True(t, strings.Index(s, ": a") < strings.Index(s, ": b"))

	require.NoError(t, writeDOT(fs, dag, "dag.gv"))
	data, err := afero.ReadFile(fs, "dag.gv")
	require.NoError(t, err)
	require.Contains(t, string(data), "digraph")

	_, err = readDAG(fs, "missing.txt", log)
	require.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "bad.txt", []byte("a b\na b c\n"), 0644))
	_, err = readDAG(fs, "bad.txt", log)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad.txt: line 2")
}

func TestDagCmdCycle(t *testing.T) {
	dag, err := mvdag.Parse("a b\nb a")
	require.NoError(t, err)
	_, err = dagLines(dag)
	require.ErrorIs(t, err, mvdag.ErrCycle)
}
