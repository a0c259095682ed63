package main

import (
	"os"

	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/cli"
	"github.com/IgorBayerl/ReportGenerator/opencover_converter/internal/filesystem"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, filesystem.DefaultFS{}))
}
