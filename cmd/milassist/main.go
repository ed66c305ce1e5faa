package main

import (
	"fmt"
	"os"

	"github.com/teranos/milassist/cmd/milassist/commands"
	"github.com/teranos/milassist/logger"
)

func main() {
	defer logger.Cleanup()
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
