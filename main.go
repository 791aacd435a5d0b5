package main

import (
	"github.com/qfactor/QFactor-core/cmd"
)

func main() {
	cmd.Execute()
}
