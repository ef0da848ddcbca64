package main

import "github.com/jafarshop/weblarek/internal/cmd"

func main() {
	cmd.Execute()
}
