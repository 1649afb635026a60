package main

import (
	"os"

	tintty "github.com/tintty/tintty/src"
)

var version = "0.3"
var revision = "devel"

func main() {
	opts := tintty.ParseOptions()
	os.Exit(tintty.Run(opts, version, revision))
}
