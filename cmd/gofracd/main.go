package main

import "github.com/openfrac/gofracd/internal/cli"

func main() {
	cli.Execute()
}
