package main

import "github.com/louiecai/fretforge/cmd"

func main() {
	cmd.Execute()
}
