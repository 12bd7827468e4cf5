package main

import (
	"github.com/rockbind/rock2cmake/cmd/rock2cmake/internal"
)

func main() {
	internal.Execute()
}
