// main.go - Einstiegspunkt der axle CLI
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/axleml/axle/cmd"
)

func main() {
	cobra.CheckErr(cmd.NewCLI().ExecuteContext(context.Background()))
}
