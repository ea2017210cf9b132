package cli

import (
	"log"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ehrlich-b/cubeida/internal/pdb"
)

var buildPDBsCmd = &cobra.Command{
	Use:   "build-pdbs",
	Short: "Generate the four pattern-database files",
	RunE:  runBuildPDBs,
}

func init() {
	buildPDBsCmd.Flags().String("out-dir", ".", "directory to write the four pdb files into")
}

func runBuildPDBs(cmd *cobra.Command, args []string) error {
	outDir, err := cmd.Flags().GetString("out-dir")
	if err != nil {
		return err
	}

	start := time.Now()
	log.Printf("build-pdbs: starting, writing to %s", outDir)
	corner, allEdge, edge0, edge1 := pdb.BuildAll()
	log.Printf("build-pdbs: all four tables built in %s", time.Since(start))

	tables := []struct {
		name  string
		file  string
		bytes []byte
	}{
		{"corner", pdb.CornerFile, corner},
		{"all-edge", pdb.AllEdgeFile, allEdge},
		{"edge-split-0", pdb.EdgeSplit0File, edge0},
		{"edge-split-1", pdb.EdgeSplit1File, edge1},
	}
	for _, t := range tables {
		path := filepath.Join(outDir, t.file)
		if err := pdb.Save(path, t.bytes); err != nil {
			return errors.Wrapf(err, "saving %s pdb", t.name)
		}
		log.Printf("build-pdbs: wrote %s (%d entries)", path, len(t.bytes))
	}
	log.Printf("build-pdbs: done in %s", time.Since(start))
	return nil
}
