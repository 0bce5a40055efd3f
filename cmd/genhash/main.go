package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Prints the bcrypt hash of a password, for manual account fixes.
func main() {
	senha := flag.String("senha", "", "senha a ser processada")
	flag.Parse()

	if *senha == "" {
		fmt.Fprintln(os.Stderr, "uso: genhash -senha <senha>")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*senha), 12)
	if err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
	fmt.Println(string(hash))
}
