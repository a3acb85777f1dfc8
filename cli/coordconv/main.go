// Package main is the coordconv command itself.
package main

import (
	"log"
	"os"

	"github.com/mipalgu/Coordinates/cli"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
