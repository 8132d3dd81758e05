package main

import (
	"os"

	"ses-identity-tool/internal/app"
)

// main hands the command line to the app runner and exits with its code.
func main() {
	runner := app.NewRunner()
	os.Exit(runner.Run(os.Args[1:]))
}
