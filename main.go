package main

import "devia/cmd"

func main() {
	cmd.Execute()
}
