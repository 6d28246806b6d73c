package main

import "difftint/internal/cli"

func main() {
	cli.Execute()
}
