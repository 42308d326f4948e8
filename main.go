// Copyright © 2025 The icelang-ls authors

package main

import "github.com/icelang/icelang-ls/cmd"

func main() {
	cmd.Execute()
}
