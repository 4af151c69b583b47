package main

import "github.com/kozaktomas/eigenfaces/cmd"

func main() {
	cmd.Execute()
}
