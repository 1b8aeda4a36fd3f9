package main

import (
	"github.com/carelink/vitals/api"
)

func main() {
	api.MainLoop()
}
