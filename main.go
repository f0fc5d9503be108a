package main

import "github.com/SvenDH/go-card-table/cmd"

func main() {
	cmd.Execute()
}
