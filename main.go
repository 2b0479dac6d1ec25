package main

import "github.com/kasuboski/ingestz/cmd"

func main() {
	cmd.Execute()
}
