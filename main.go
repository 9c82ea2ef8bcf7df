package main

import "shotwiz/internal/cli"

func main() {
	cli.Execute()
}
