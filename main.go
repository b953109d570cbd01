package main

import "github.com/vzhuk/gomines/cmd"

func main() {
	cmd.Execute()
}
