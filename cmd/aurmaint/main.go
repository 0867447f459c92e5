package main

import "github.com/APoniatowski/awscli-local/internal/cli"

func main() {
	cli.Execute()
}
