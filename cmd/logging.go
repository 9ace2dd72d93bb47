package cmd

import (
	"github.com/achilleasa/objview/log"
	"github.com/urfave/cli"
)

var logger = log.New("objview")

func setupLogging(ctx *cli.Context) error {
	level, err := logLevel(
		ctx.GlobalString("log-level"),
		ctx.GlobalBool("q"),
		ctx.GlobalBool("v"),
		ctx.GlobalBool("vv"),
	)
	if err != nil {
		logger.Error(err)
		return err
	}

	log.SetLevel(level)
	return nil
}

// Resolve the logger verbosity. The -q, -v and -vv shortcuts override the
// level selected by name.
func logLevel(name string, quiet, verbose, veryVerbose bool) (log.Level, error) {
	level := log.Notice
	if name != "" {
		var err error
		if level, err = log.ParseLevel(name); err != nil {
			return level, err
		}
	}

	switch {
	case veryVerbose:
		level = log.Debug
	case verbose:
		level = log.Info
	case quiet:
		level = log.Warning
	}
	return level, nil
}
