// Generates a bcrypt hash for seeding an initial admin account.
//
//	go run ./scripts/genhash <password>
package main

import (
	"fmt"
	"os"

	"ai-match-connect/pkg/auth"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password>")
		os.Exit(1)
	}

	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
