package main

import "github.com/moesys/tq/cmd"

func main() {
	cmd.Execute()
}
