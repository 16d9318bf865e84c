// main.go - Einstiegspunkt des Resona CLI
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/resona-asr/resona/cmd"
)

func main() {
	cobra.CheckErr(cmd.NewCLI().ExecuteContext(context.Background()))
}
