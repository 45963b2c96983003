package main

import "github.com/franv314/task-maker-go/cmd"

func main() {
	cmd.Execute()
}
