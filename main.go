package main

import "github.com/itsjinihere/csc453-asgn05/cmd"

func main() {
	cmd.Execute()
}
