package main

import "nsfgrants/cmd"

func main() {
	cmd.Execute()
}
