package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/katariya/portfolio/cmd"
)

// Set by ldflags at release time.
var version = "dev"

func main() {
	cmd.Execute(version)
}
