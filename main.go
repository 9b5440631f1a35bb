package main

import "github.com/jcdickinson/quarry/cmd"

func main() {
	cmd.Execute()
}
