package main

import "ocrscan/internal/cli"

func main() {
	cli.Execute()
}
