// Package main is the entry point of vscope.
package main

import (
	"github.com/samber/lo"
	"github.com/vscope-cli/vscope/cmd"
	"github.com/vscope-cli/vscope/config"
	"github.com/vscope-cli/vscope/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
