package main

import (
	"fmt"
	"os"

	"starksnap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Printf("server run into an error: %s", err)
		os.Exit(1)
	}
}
