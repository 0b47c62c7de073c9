package main

import "label-sync/cmd"

func main() {
	cmd.Execute()
}
