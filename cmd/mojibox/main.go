/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/mojibox/mojibox/cmd/mojibox/cmd"
)

func main() {
	cmd.Execute()
}
