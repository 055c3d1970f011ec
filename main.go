package main

import "github.com/jamesbehr/fswap/cmd"

func main() {
	cmd.Execute()
}
