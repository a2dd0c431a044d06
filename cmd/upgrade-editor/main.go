package main

import "upgrade-editor/internal/cli"

func main() {
	cli.Execute()
}
