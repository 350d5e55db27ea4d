package main

import "github.com/jsphweid/chordmark/cmd"

func main() {
	cmd.Execute()
}
