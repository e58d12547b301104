// Command argon2 hashes or verifies a password from the command line.
package main

import (
	"bufio"
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fleximus/argon2"
)

func main() {
	variant := flag.String("variant", "id", "Argon2 variant: d, i, or id")
	timeCost := flag.Uint("time", 3, "number of passes")
	memory := flag.Uint("memory", 64*1024, "memory size in KiB")
	parallelism := flag.Uint("parallelism", 4, "lanes / thread count")
	keyLen := flag.Uint("length", 32, "output digest length in bytes")
	salt := flag.String("salt", "", "salt (at least 8 bytes; random if empty)")
	verify := flag.String("verify", "", "PHC string to verify the password against, instead of hashing")
	bench := flag.Bool("bench", false, "time the derivation")

	flag.Parse()

	password := readPassword()

	if *verify != "" {
		runVerify(*verify, password, *bench)
		return
	}

	runHash(*variant, uint32(*timeCost), uint32(*memory), uint32(*parallelism), uint32(*keyLen), []byte(*salt), password, *bench)
}

func readPassword() []byte {
	fmt.Fprint(os.Stderr, "password: ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		log.Fatalf("failed to read password: %v", scanner.Err())
	}
	return []byte(scanner.Text())
}

func runHash(variant string, timeCost, memory, parallelism, keyLen uint32, salt, password []byte, bench bool) {
	if len(salt) == 0 {
		salt = randomSalt(16)
	}

	start := time.Now()
	var encoded string
	var err error
	switch variant {
	case "d":
		encoded, err = argon2.HashD(timeCost, memory, parallelism, password, salt, keyLen)
	case "i":
		encoded, err = argon2.HashI(timeCost, memory, parallelism, password, salt, keyLen)
	case "id":
		encoded, err = argon2.HashID(timeCost, memory, parallelism, password, salt, keyLen)
	default:
		log.Fatalf("unknown variant %q (use d, i, or id)", variant)
	}
	duration := time.Since(start)
	if err != nil {
		log.Fatalf("hash failed: %v", err)
	}

	fmt.Println(encoded)
	if bench {
		fmt.Fprintf(os.Stderr, "derivation took %v\n", duration)
	}
}

func runVerify(encoded string, password []byte, bench bool) {
	start := time.Now()
	ok, err := argon2.Verify(encoded, password)
	duration := time.Since(start)
	if bench {
		fmt.Fprintf(os.Stderr, "verification took %v\n", duration)
	}
	if !ok {
		fmt.Println("mismatch:", err)
		os.Exit(1)
	}
	fmt.Println("ok")
}

func randomSalt(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("failed to read random salt: %v", err)
	}
	return b
}
