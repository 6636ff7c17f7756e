package main

import "wifi-toggle/cmd"

func main() {
	cmd.Execute()
}
