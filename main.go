package main

import (
	"dcmedit/cli"
)

func main() {
	cli.Start()
}
