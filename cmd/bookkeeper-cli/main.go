package main

import "bookkeeper/cmd/bookkeeper-cli/cmd"

func main() {
	cmd.Execute()
}
