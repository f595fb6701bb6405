package main

import "starwars-api/cmd"

func main() {
	cmd.Execute()
}
