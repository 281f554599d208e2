package main

import "github.com/mviana/autoedit/internal/cli"

func main() {
	cli.Main()
}
