package main

import (
	"os"
	sys "os"
)

func helper() {
	os.Exit(2)
}

func main() {
	helper()
	defer func() {
		sys.Exit(1) // want "direct os.Exit call in main function of package main"
	}()
	os.Exit(0) // want "direct os.Exit call in main function of package main"
}
