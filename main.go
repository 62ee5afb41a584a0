package main

import "github.com/parthshah1/dropwizard/cmd"

func main() {
	cmd.Execute()
}
