package main

import "lifeos/internal/cli"

func main() {
	cli.Execute()
}
