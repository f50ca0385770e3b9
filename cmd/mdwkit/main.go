package main

import (
	"os"

	"github.com/msto63/mdwkit/cmd/mdwkit/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
