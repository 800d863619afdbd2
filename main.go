package main

import "mspro-labs/shoe-scout/cmd"

func main() {
	cmd.Execute()
}
