package main

import (
	"github.com/zpeteman/content-repurposer/cmd/ccraft/cmd"
)

func main() {
	cmd.Execute()
}
