package main

import (
	"os"

	"github.com/olincollege/passwordgame/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
