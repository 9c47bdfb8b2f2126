package main

import "github.com/sndbox/staticd/cmd"

func main() {
	cmd.Execute()
}
