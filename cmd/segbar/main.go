package main

import "github.com/OpenTraceLab/segbar/cmd/segbar/cmd"

func main() {
	cmd.Execute()
}
