// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command vextract adds debug ids to vanilla-extract style calls and wraps
// style modules in a file scope.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:           "vextract",
		Short:         "Debug ids and file scopes for vanilla-extract",
		Long:          "vextract rewrites *.css.{js,mjs,jsx,ts,tsx} modules so every style call carries a debug id and the module runs inside a file scope.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().String("root", "", "Directory scope paths are relative to (default: git root or .)")
	rootCmd.PersistentFlags().String("package-name", "", "Package name recorded in each file scope")
	rootCmd.PersistentFlags().String("plugin-config", "", `JSON plugin config, e.g. '{"packageName":"@acme/ui"}'`)
	rootCmd.PersistentFlags().Int("workers", 0, "Files transformed in parallel (0 = CPU count)")
	rootCmd.PersistentFlags().Bool("no-git", false, "Disable git operations")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	// Bind flags to viper.
	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("package-name", rootCmd.PersistentFlags().Lookup("package-name"))
	viper.BindPFlag("plugin-config", rootCmd.PersistentFlags().Lookup("plugin-config"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	viper.BindPFlag("no-git", rootCmd.PersistentFlags().Lookup("no-git"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Env vars: VEXTRACT_ROOT, VEXTRACT_PACKAGE_NAME, etc.
	viper.SetEnvPrefix("VEXTRACT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".vextract")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		slog.SetDefault(newLogger(viper.GetBool("verbose")))
	}

	// Add commands.
	rootCmd.AddCommand(newTransformCmd())
	rootCmd.AddCommand(newScopeCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger returns a text logger on stderr.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print vextract version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("vextract %s\n", version)
		},
	}
}
