package main

import "github.com/sifiratik/fidan/cmd/fidan-cli/cmd"

func main() {
	cmd.Execute()
}
