package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "fightctl",
		Usage: "operational commands for the fightpicks database",
		Commands: []*cli.Command{
			newMigrateCommand(),
			newResolveCommand(),
			newReconcileEventsCommand(),
			newImportCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
