package main

import "github.com/shunnNet/co/cmd"

func main() {
	cmd.Execute()
}
