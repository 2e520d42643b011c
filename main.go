package main

import "github.com/CodMac/go-treesitter-uml-generator/cli"

func main() {
	cli.Execute()
}
