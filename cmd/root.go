// Copyright © 2025 The icelang-ls authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	colorFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "icelang-ls",
	Short: "Language server and static analyzer for icelang",
	Long: `icelang-ls is a language server and static analyzer for the icelang
scripting language. It provides real-time diagnostics, completion, hover
documentation and document symbols over the Language Server Protocol,
plus CLI commands for checking files and exploring the language.

Getting started:
  icelang-ls lsp                Start the language server on stdio
  icelang-ls check file.ice     Analyze a source file and report findings
  icelang-ls repl               Interactive diagnostics playground
  icelang-ls doc print          Show documentation for a builtin function
  icelang-ls doc --guide        Show the icelang language reference
  icelang-ls parse file.ice     Dump the syntax tree of a file

Language overview:
  icelang is a small dynamically typed scripting language. Variables are
  declared with "set name = expr;", functions with "function name(args)
  { ... }". Control flow uses if/else, while, loop, for..in and match.
  Anonymous functions are written "lambda (args) -> { ... }".

Editor configuration (VS Code):
  Install a generic LSP client extension and configure it to run
  "icelang-ls lsp --stdio" for .ice files.

More information:
  Source code:     https://github.com/icelang/icelang-ls`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err) //nolint:errcheck // best-effort error display
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.icelang-ls.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		`Control colored output: "auto", "always", or "never".`)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err) //nolint:errcheck // best-effort error display
			os.Exit(1)
		}

		// Search config in home directory with name ".icelang-ls"
		// (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".icelang-ls")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// Config file discovery must stay off stdout; with the lsp command
	// stdout carries the wire protocol.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed()) //nolint:errcheck // informational
	}

	if !rootCmd.PersistentFlags().Changed("color") {
		if v := viper.GetString("color"); v != "" {
			colorFlag = v
		}
	}
}
