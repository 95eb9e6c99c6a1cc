package main

import "github.com/julienpequegnot/docdist/cmd"

func main() {
	cmd.Execute()
}
