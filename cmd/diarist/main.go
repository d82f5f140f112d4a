package main

import "diarist/cmd/diarist/cmd"

func main() {
	cmd.Execute()
}
