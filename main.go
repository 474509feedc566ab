package main

import "rest-pos/cli"

func main() {
	cli.Execute()
}
