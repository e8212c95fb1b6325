package dag_cmd

import (
	"fmt"
	"os"

	"github.com/rhonix/rboot/mvdag"
	"github.com/rhonix/rboot/rboot/glb"
	"github.com/rhonix/rboot/util/lines"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dotFile string

func Init() *cobra.Command {
	dagCmd := &cobra.Command{
		Use:   "dag <edge list file>",
		Args:  cobra.ExactArgs(1),
		Short: "parses block DAG edge list 'parent child' and displays its structure",
		Run:   runDagCmd,
	}
	dagCmd.Flags().StringVar(&dotFile, "dot", "", "write the DAG in Graphviz DOT format into the file")
	return dagCmd
}

func runDagCmd(_ *cobra.Command, args []string) {
	fs := afero.NewOsFs()
	dag, err := readDAG(fs, args[0], glb.Log())
	glb.AssertNoError(err)

	ln, err := dagLines(dag)
	glb.AssertNoError(err)
	glb.Infof("%s", ln.String())

	if dotFile == "" {
		return
	}
	glb.AssertNoError(writeDOT(fs, dag, dotFile))
	glb.Infof("DAG has been saved in DOT format to '%s'", dotFile)
}

func readDAG(fs afero.Fs, fname string, log *zap.SugaredLogger) (mvdag.DAG, error) {
	f, err := fs.Open(fname)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	dag, err := mvdag.ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	log.Debugf("%s: %d edges, %d vertices", fname, dag.NumEdges(), len(dag.Vertices()))
	return dag, nil
}

func dagLines(dag mvdag.DAG) (*lines.Lines, error) {
	order, err := dag.TopologicalOrder()
	if err != nil {
		return nil, err
	}
	ret := lines.New()
	ret.Add("vertices: %d, edges: %d", len(dag.Vertices()), dag.NumEdges())
	ret.Add("roots:")
	for _, h := range dag.Roots() {
		ret.Add("    %s", h)
	}
	ret.Add("tips:")
	for _, h := range dag.Tips() {
		ret.Add("    %s", h)
	}
	ret.Add("topological order:")
	for i, h := range order {
		ret.Add("    %3d: %s", i, h)
	}
	return ret, nil
}

func writeDOT(fs afero.Fs, dag mvdag.DAG, fname string) error {
	f, err := fs.OpenFile(fname, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if err = dag.WriteDOT(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
