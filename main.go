package main

import "newsportal/cmd"

func main() {
	cmd.Execute()
}
