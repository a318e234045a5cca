package main

import "html-deployer/cmd"

func main() {
	cmd.Execute()
}
