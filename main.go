package main

import "github.com/qobs-build/cstart/cmd"

func main() {
	cmd.Execute()
}
