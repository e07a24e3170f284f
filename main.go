package main

import "github.com/mutagenyx/mutagenyx/cmd"

func main() {
	cmd.Execute()
}
