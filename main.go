package main

import "github.com/langbench/accutable/cmd"

func main() {
	cmd.Execute()
}
