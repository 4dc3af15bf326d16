package main

import (
	"fmt"
	"os"

	"github.com/lintang-b-s/rdp-simplifier/pkg/command"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "rdp-simplifier",
	Short:        "Ramer-Douglas-Peucker curve simplification",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(command.Cmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
