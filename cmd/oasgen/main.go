package main

import (
	"fmt"
	"os"

	"github.com/oasgen/oasgen/internal/cli"
)

func main() {
	cmd := cli.RootCmd()
	err := cmd.Execute()
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
