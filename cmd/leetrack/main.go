package main

import "github.com/mfreitas/leetrack/internal/cli"

func main() {
	cli.Execute()
}
