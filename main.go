package main

import (
	"os"

	"github.com/achilleasa/objview/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "objview"
	app.Usage = "load, inspect and compile wavefront obj meshes"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "q",
			Usage: "only log warnings and errors",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Value: "notice",
			Usage: "log verbosity (debug, info, notice, warning, error); -q, -v and -vv take precedence",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "inspect",
			Usage: "load a mesh and print information about it",
			Description: `
Parse a mesh from a wavefront obj file (or a compiled zip file), generate the
attributes requested by the selected flags or shader variant and print the
attribute counts, centroid and bounding box.`,
			ArgsUsage: "mesh_file",
			Flags: append([]cli.Flag{
				cli.BoolFlag{
					Name:  "center",
					Usage: "move the mesh centroid to the origin before reporting",
				},
			}, cmd.LoaderFlags...),
			Action: cmd.InspectMesh,
		},
		{
			Name:  "compile",
			Usage: "compile obj meshes into a binary compressed format",
			Description: `
Parse meshes from wavefront obj files, generate the requested attributes and
write the renderer-ready mesh to a zip archive next to each input file.`,
			ArgsUsage: "mesh_file1.obj mesh_file2.obj ...",
			Flags:     cmd.LoaderFlags,
			Action:    cmd.CompileMesh,
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
