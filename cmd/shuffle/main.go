package main

import "github.com/oy3o/shuffle/cmd/shuffle/cmd"

func main() {
	cmd.Execute()
}
