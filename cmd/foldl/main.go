// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package main implements the foldl CLI, which summarizes numeric samples
// in one pass.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version information
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "foldl",
	Short: "Single-pass statistics over numeric streams",
	Long: `foldl reads whitespace separated numbers and computes statistics over them
in a single pass, fusing every statistic into one traversal of the input.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (json, console)")
	rootCmd.AddCommand(versionCmd)
}

// versionCmd prints the build version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the foldl version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "foldl %s\n", version)
	},
}
