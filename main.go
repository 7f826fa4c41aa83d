package main

import "github.com/devpik/quantix-nutri-ai/cmd/quantix"

func main() {
	quantix.Execute()
}
