package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Generates a bcrypt hash for the admin credential. Store the output in the
// settings collection under the admin_password key, or set ADMIN_PASSWORD
// before first serve to let the seed migration do it.
func main() {
	fmt.Print("New admin password: ")

	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		log.Fatal(err)
	}
	password = strings.TrimRight(password, "\r\n")

	if len(password) < 8 {
		log.Fatal("Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(hash))
}
