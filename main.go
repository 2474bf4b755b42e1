package main

import "github.com/gnames/hgnckb/cmd"

func main() {
	cmd.Execute()
}
