package main

import "github.com/carelink/vitals/cmd/vitals/command"

func main() {
	command.Execute()
}
