package main

import (
	"bufio"
	crand "crypto/rand"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/cipherclass/cipherclass/elgamal"
	"github.com/cipherclass/cipherclass/rsa"
)

// role B: generates keys, shares the public key with A, decrypts.

func readLine(in *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, err := in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func readInt(in *bufio.Reader, prompt string, min int64) *big.Int {
	for {
		s := readLine(in, prompt)
		if s == "" {
			return nil
		}
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			fmt.Println("error: enter a valid integer")
			continue
		}
		if n.Cmp(big.NewInt(min)) < 0 {
			fmt.Printf("error: value must be >= %d\n", min)
			continue
		}
		return n
	}
}

func genRSAKeys(in *bufio.Reader, bits int) *rsa.PrivateKey {
	fmt.Println("\n1. enter primes manually")
	fmt.Println("2. generate random primes")
	choice := readLine(in, "choice (1 or 2, default 1): ")
	if choice == "" {
		choice = "1"
	}

	if choice == "2" {
		key, err := rsa.GenKey(crand.Reader, bits)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return nil
		}
		fmt.Printf("generated: p=%v, q=%v\n", key.P, key.Q)
		printRSAKeys(key)
		return key
	}

	fmt.Println("\nenter two small primes (e.g., 11, 13, 17, 19, 23):")
	p := readInt(in, "p = ", 2)
	if p == nil {
		return nil
	}
	q := readInt(in, "q = ", 2)
	if q == nil {
		return nil
	}

	fmt.Println("\nchoose public exponent e (common: 3, 17, 65537):")
	e := readInt(in, "e (or Enter for 17): ", 2)
	if e == nil {
		e = big.NewInt(17)
	}

	key, err := rsa.FromPrimes(p, q, e)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return nil
	}
	printRSAKeys(key)
	return key
}

func printRSAKeys(key *rsa.PrivateKey) {
	phi := new(big.Int).Mul(
		new(big.Int).Sub(key.P, big.NewInt(1)),
		new(big.Int).Sub(key.Q, big.NewInt(1)),
	)
	fmt.Printf("\nn = p * q = %v * %v = %v\n", key.P, key.Q, key.N)
	fmt.Printf("phi(n) = (p-1)*(q-1) = %v\n", phi)
	fmt.Printf("d = e^-1 mod phi(n) = %v\n", key.D)
	fmt.Printf("\npublic key (share with A): n=%v, e=%v\n", key.N, key.E)
	fmt.Printf("private key (keep secret): d=%v, p=%v, q=%v\n", key.D, key.P, key.Q)
}

func runRSA(in *bufio.Reader, bits int) {
	var key *rsa.PrivateKey

	for {
		fmt.Println("\n1. generate new keys")
		fmt.Println("2. show public key")
		fmt.Println("3. decrypt number")
		fmt.Println("4. decrypt text")
		fmt.Println("5. show all keys")
		fmt.Println("6. exit")

		switch readLine(in, "\nselect: ") {
		case "1":
			if k := genRSAKeys(in, bits); k != nil {
				key = k
			}
		case "2":
			if key == nil {
				fmt.Println("generate keys first")
				continue
			}
			fmt.Printf("\npublic key: n=%v, e=%v\n", key.N, key.E)
			fmt.Println("give this to A")
		case "3":
			if key == nil {
				fmt.Println("generate keys first")
				continue
			}
			c := readInt(in, "ciphertext from A: ", 0)
			if c == nil {
				continue
			}
			m, err := rsa.DecryptCRT(key, c)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Printf("\nm = c^d mod n = %v^%v mod %v\n", c, key.D, key.N)
			fmt.Printf("decrypted: m = %v\n", m)
		case "4":
			if key == nil {
				fmt.Println("generate keys first")
				continue
			}
			c := readInt(in, "ciphertext from A: ", 0)
			if c == nil {
				continue
			}
			m, err := rsa.DecryptCRT(key, c)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			msg, err := rsa.ExtractMsg(m)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Printf("decrypted: %q\n", string(msg))
		case "5":
			if key == nil {
				fmt.Println("generate keys first")
				continue
			}
			printRSAKeys(key)
		case "6":
			return
		default:
			fmt.Println("invalid choice")
		}
	}
}

func genElGamalKeys(in *bufio.Reader, bits int) *elgamal.PrivateKey {
	fmt.Println("\n1. enter system parameters manually")
	fmt.Println("2. generate random system parameters")
	choice := readLine(in, "choice (1 or 2, default 1): ")
	if choice == "" {
		choice = "1"
	}

	var syskey *elgamal.SystemKey
	var err error
	if choice == "2" {
		syskey, err = elgamal.GenSysKey(crand.Reader, bits)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return nil
		}
		fmt.Printf("generated: p=%v, g=%v\n", syskey.P, syskey.G)
	} else {
		p := readInt(in, "p = ", 3)
		if p == nil {
			return nil
		}
		g := readInt(in, "g = ", 2)
		if g == nil {
			return nil
		}
		syskey, err = elgamal.FromParams(p, g)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return nil
		}
	}

	key, err := elgamal.GenUserKey(crand.Reader, syskey)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return nil
	}
	printElGamalKeys(key)
	return key
}

func printElGamalKeys(key *elgamal.PrivateKey) {
	fmt.Printf("\ny = g^x mod p = %v^%v mod %v = %v\n", key.G, key.X, key.P, key.Y)
	fmt.Printf("\npublic key (share with A): p=%v, g=%v, y=%v\n", key.P, key.G, key.Y)
	fmt.Printf("private key (keep secret): x=%v\n", key.X)
}

func runElGamal(in *bufio.Reader, bits int) {
	var key *elgamal.PrivateKey

	for {
		fmt.Println("\n1. generate new keys")
		fmt.Println("2. show public key")
		fmt.Println("3. decrypt number")
		fmt.Println("4. decrypt text")
		fmt.Println("5. show all keys")
		fmt.Println("6. exit")

		switch readLine(in, "\nselect: ") {
		case "1":
			if k := genElGamalKeys(in, bits); k != nil {
				key = k
			}
		case "2":
			if key == nil {
				fmt.Println("generate keys first")
				continue
			}
			fmt.Printf("\npublic key: p=%v, g=%v, y=%v\n", key.P, key.G, key.Y)
			fmt.Println("give this to A")
		case "3":
			if key == nil {
				fmt.Println("generate keys first")
				continue
			}
			c1 := readInt(in, "c1 from A: ", 0)
			if c1 == nil {
				continue
			}
			c2 := readInt(in, "c2 from A: ", 0)
			if c2 == nil {
				continue
			}
			m, err := elgamal.Decrypt(key, c1, c2)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Printf("\ns = c1^x mod p, m = c2 * s^-1 mod p\n")
			fmt.Printf("decrypted: m = %v\n", m)
		case "4":
			if key == nil {
				fmt.Println("generate keys first")
				continue
			}
			c1 := readInt(in, "c1 from A: ", 0)
			if c1 == nil {
				continue
			}
			c2 := readInt(in, "c2 from A: ", 0)
			if c2 == nil {
				continue
			}
			m, err := elgamal.Decrypt(key, c1, c2)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			msg, err := elgamal.ExtractMsg(m)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Printf("decrypted: %q\n", string(msg))
		case "5":
			if key == nil {
				fmt.Println("generate keys first")
				continue
			}
			printElGamalKeys(key)
		case "6":
			return
		default:
			fmt.Println("invalid choice")
		}
	}
}

func main() {
	scheme := flag.String("scheme", "rsa", "rsa or elgamal")
	bits := flag.Int("bits", 16, "modulus size for random key generation")
	flag.Parse()

	fmt.Printf("%s program for B (receiver)\n", *scheme)
	fmt.Println("\nB generates keys, shares public key with A, decrypts messages")

	in := bufio.NewReader(os.Stdin)
	switch *scheme {
	case "rsa":
		runRSA(in, *bits)
	case "elgamal":
		runElGamal(in, *bits)
	default:
		fmt.Printf("unknown scheme %q\n", *scheme)
		os.Exit(1)
	}
}
