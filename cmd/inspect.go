package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/achilleasa/objview/mesh"
	"github.com/achilleasa/objview/mesh/reader"
	"github.com/achilleasa/objview/types"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Load a mesh and display information about it.
func InspectMesh(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing mesh file argument")
	}

	opts, variant, err := loaderOptions(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	m, err := reader.LoadMesh(ctx.Args().First(), opts)
	if err != nil {
		return err
	}

	if err = variant.Check(m); err != nil {
		logger.Warning(err)
	}

	if ctx.Bool("center") {
		centroid, err := mesh.Centroid(m.Positions)
		if err != nil {
			logger.Error(err)
			return err
		}
		mesh.Center(m.Positions, centroid)
	}

	logger.Noticef("mesh information:\n%s", meshStats(m))
	return nil
}

// Render a table with mesh attribute counts and extents.
func meshStats(m *mesh.Mesh) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Attribute", "Value"})

	uvSource := "file"
	if m.SyntheticUV {
		uvSource = "synthesized"
	}

	table.Append([]string{"Vertices", fmt.Sprintf("%d", len(m.Positions))})
	table.Append([]string{"Triangles", fmt.Sprintf("%d", m.TriangleCount())})
	table.Append([]string{"Normals", fmt.Sprintf("%d", len(m.Normals))})
	table.Append([]string{"Tex coords", fmt.Sprintf("%d (%s)", len(m.TexCoords), uvSource)})
	table.Append([]string{"Colors", fmt.Sprintf("%d", len(m.Colors))})

	if !m.IsEmpty() {
		centroid, _ := mesh.Centroid(m.Positions)
		bboxMin, bboxMax := m.Positions[0], m.Positions[0]
		for _, p := range m.Positions[1:] {
			bboxMin = types.MinVec3(bboxMin, p)
			bboxMax = types.MaxVec3(bboxMax, p)
		}

		table.Append([]string{"Centroid", fmt.Sprintf("%v", centroid)})
		table.Append([]string{"BBox min", fmt.Sprintf("%v", bboxMin)})
		table.Append([]string{"BBox max", fmt.Sprintf("%v", bboxMax)})
	}

	table.Render()
	return buf.String()
}
