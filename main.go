package main

import "github.com/msjuck/teemo/cmd"

func main() {
	cmd.Execute()
}
