package main

import (
	"os"

	"bennypowers.dev/imstyle/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}
