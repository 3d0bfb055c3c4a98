package main

import "github.com/jonwraymond/versionator/cmd"

func main() {
	cmd.Execute()
}
