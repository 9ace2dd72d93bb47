package cmd

import (
	"path/filepath"
	"strings"

	"github.com/achilleasa/objview/mesh/reader"
	"github.com/achilleasa/objview/mesh/writer"
	"github.com/urfave/cli"
)

// Compile obj meshes into the zip format.
func CompileMesh(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts, _, err := loaderOptions(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	for idx := 0; idx < ctx.NArg(); idx++ {
		meshFile := ctx.Args().Get(idx)
		zipFile, ok := compiledMeshFile(meshFile)
		if !ok {
			logger.Warningf("skipping unsupported file %s", meshFile)
			continue
		}

		m, err := reader.LoadMesh(meshFile, opts)
		if err != nil {
			return err
		}

		logger.Noticef("mesh information:\n%s", meshStats(m))

		if err = writer.WriteMesh(m, zipFile); err != nil {
			logger.Error(err)
			return err
		}
	}

	return nil
}

// Get the path of the zip file that a compiled obj mesh is written to. The
// second return value is false if meshFile is not an obj file.
func compiledMeshFile(meshFile string) (string, bool) {
	ext := filepath.Ext(meshFile)
	if strings.ToLower(ext) != ".obj" {
		return "", false
	}
	return strings.TrimSuffix(meshFile, ext) + ".zip", true
}
