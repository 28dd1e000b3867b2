package main

import "github.com/mvp-joe/todocol/internal/cli"

func main() {
	cli.Execute()
}
