package main

import "github.com/nic1611/furnctl/pkg/cli"

func main() {
	cli.Execute()
}
