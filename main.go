package main

import (
	"golang-ipconfig/cmd"
)

func main() {
	cmd.Execute()
}
