package main

import (
	"github.com/Sriram-PR/go-wildpat/internal/cli"
)

func main() {
	cli.Execute()
}
