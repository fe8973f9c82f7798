package main

import "goline/cmd/goline/cmd"

func main() {
	cmd.Execute()
}
