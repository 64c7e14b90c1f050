package main

import "github.com/devbush/aai-transcribe/internal/adapters/cli"

func main() {
	cli.Execute()
}
