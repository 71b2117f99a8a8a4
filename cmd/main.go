package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type VersionTags struct {
	Version   string
	GitCommit string
	BuildDate string
	BuildOS   string
}

func Main(info VersionTags) {
	app := newApp(info)
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func newApp(info VersionTags) *cli.App {
	app := cli.NewApp()

	app.EnableBashCompletion = true

	app.Name = "bnf"
	app.Usage = "build parsers from BNF grammars"
	app.Version = info.Version
	app.Metadata = map[string]interface{}{
		"commit": info.GitCommit,
		"built":  info.BuildDate,
		"os":     info.BuildOS,
	}

	app.Commands = []cli.Command{testCommand, checkCommand, genCommand}
	return app
}
