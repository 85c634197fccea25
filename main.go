package main

import "github.com/notargets/fembasis/cmd"

func main() {
	cmd.Execute()
}
