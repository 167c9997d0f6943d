package main

import "github.com/Gabriel-c0Nsp/PortugolToC-compiler/cmd"

func main() {
	cmd.Execute()
}
