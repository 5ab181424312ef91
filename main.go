package main

import "apo-analyzer/cmd"

func main() {
	cmd.Execute()
}
