package main

import (
	"github.com/skbhati199/ai-img-gen-go/internal/cli"
)

var version = "dev"

func main() {
	cli.Execute(version)
}
