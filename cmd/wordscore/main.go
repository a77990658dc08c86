package main

import "github.com/mcoot/wordscore/internal/cli"

func main() {
	cli.Execute()
}
