package cmd

import (
	"math/rand"

	"github.com/achilleasa/objview/mesh/reader"
	"github.com/achilleasa/objview/shading"
	"github.com/urfave/cli"
)

// Flags shared by commands that load meshes.
var LoaderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "variant",
		Usage: "shader variant (wireframe, color, textured, phong); selects the attributes to load",
	},
	cli.BoolFlag{
		Name:  "normals",
		Usage: "read vertex normals",
	},
	cli.BoolFlag{
		Name:  "texcoords",
		Usage: "read texture coordinates",
	},
	cli.BoolFlag{
		Name:  "synth-uv",
		Usage: "synthesize per-triangle uv coordinates when the file has none",
	},
	cli.BoolFlag{
		Name:  "compute-normals",
		Usage: "compute smooth per-vertex normals",
	},
	cli.BoolFlag{
		Name:  "colors",
		Usage: "generate decorative per-vertex colors",
	},
	cli.Int64Flag{
		Name:  "seed",
		Usage: "seed for decorative colors (0 picks a time-based seed)",
	},
}

// Build loader options from the command flags. If a variant is selected its
// attribute requirements are merged with the explicit flags.
func loaderOptions(ctx *cli.Context) (reader.Options, shading.Variant, error) {
	variant := shading.Wireframe
	var opts reader.Options

	if name := ctx.String("variant"); name != "" {
		var err error
		if variant, err = shading.ParseVariant(name); err != nil {
			return opts, variant, err
		}
		opts = variant.LoaderOptions()
	}

	opts.ReadNormals = opts.ReadNormals || ctx.Bool("normals")
	opts.ReadTexCoords = opts.ReadTexCoords || ctx.Bool("texcoords")
	opts.SynthesizeUV = opts.SynthesizeUV || ctx.Bool("synth-uv")
	opts.ComputeNormals = opts.ComputeNormals || ctx.Bool("compute-normals")
	opts.GenerateColors = opts.GenerateColors || ctx.Bool("colors")

	if seed := ctx.Int64("seed"); seed != 0 {
		opts.Rand = rand.New(rand.NewSource(seed))
	}

	return opts, variant, nil
}
