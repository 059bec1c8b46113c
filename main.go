package main

import "github.com/gaurav-prasanna/textkit/cmd"

func main() {
	cmd.Execute()
}
