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

// role A: gets the public key from B, encrypts, hands the ciphertext back.

func readLine(in *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, err := in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

// readInt keeps prompting until it gets a valid integer >= min, or an
// empty line (returns nil).
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

func runRSA(in *bufio.Reader) {
	var pub *rsa.PublicKey

	for {
		fmt.Println("\n1. get public key from B")
		fmt.Println("2. encrypt number")
		fmt.Println("3. encrypt text")
		fmt.Println("4. show current public key")
		fmt.Println("5. exit")

		switch readLine(in, "\nselect: ") {
		case "1":
			fmt.Println("\nB gives you their public key (n, e)")
			n := readInt(in, "n = ", 2)
			if n == nil {
				continue
			}
			e := readInt(in, "e = ", 2)
			if e == nil {
				continue
			}
			pub = &rsa.PublicKey{N: n, E: e}
			fmt.Printf("n=%v, e=%v\n", n, e)
		case "2":
			if pub == nil {
				fmt.Println("get public key first")
				continue
			}
			m := readInt(in, "\nmessage as number: ", 0)
			if m == nil {
				continue
			}
			c, err := rsa.Encrypt(pub, m)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Printf("\nc = m^e mod n = %v^%v mod %v\n", m, pub.E, pub.N)
			fmt.Printf("ciphertext: c = %v\n", c)
			fmt.Println("send this to B")
		case "3":
			if pub == nil {
				fmt.Println("get public key first")
				continue
			}
			text := readLine(in, "\nmessage text: ")
			m, err := rsa.PrepareMsg([]byte(text), pub.N.BitLen())
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			c, err := rsa.Encrypt(pub, m)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Printf("encoded: m = %v\n", m)
			fmt.Printf("ciphertext: c = %v\n", c)
			fmt.Println("send this to B")
		case "4":
			if pub == nil {
				fmt.Println("get public key first")
				continue
			}
			fmt.Printf("n=%v, e=%v\n", pub.N, pub.E)
		case "5":
			return
		default:
			fmt.Println("invalid choice")
		}
	}
}

func runElGamal(in *bufio.Reader) {
	var pub *elgamal.PublicKey

	for {
		fmt.Println("\n1. get public key from B")
		fmt.Println("2. encrypt number")
		fmt.Println("3. encrypt text")
		fmt.Println("4. show current public key")
		fmt.Println("5. exit")

		switch readLine(in, "\nselect: ") {
		case "1":
			fmt.Println("\nB gives you their public key (p, g, y)")
			p := readInt(in, "p = ", 3)
			if p == nil {
				continue
			}
			g := readInt(in, "g = ", 2)
			if g == nil {
				continue
			}
			y := readInt(in, "y = ", 1)
			if y == nil {
				continue
			}
			pub = &elgamal.PublicKey{P: p, G: g, Y: y}
			fmt.Printf("p=%v, g=%v, y=%v\n", p, g, y)
		case "2":
			if pub == nil {
				fmt.Println("get public key first")
				continue
			}
			m := readInt(in, "\nmessage as number: ", 0)
			if m == nil {
				continue
			}
			c1, c2, err := elgamal.Encrypt(crand.Reader, pub, m)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Printf("\nc1 = g^k mod p, c2 = m*y^k mod p\n")
			fmt.Printf("ciphertext: (c1, c2) = (%v, %v)\n", c1, c2)
			fmt.Println("send this to B")
		case "3":
			if pub == nil {
				fmt.Println("get public key first")
				continue
			}
			text := readLine(in, "\nmessage text: ")
			m, err := elgamal.PrepareMsg([]byte(text), pub.P.BitLen())
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			c1, c2, err := elgamal.Encrypt(crand.Reader, pub, m)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Printf("encoded: m = %v\n", m)
			fmt.Printf("ciphertext: (c1, c2) = (%v, %v)\n", c1, c2)
			fmt.Println("send this to B")
		case "4":
			if pub == nil {
				fmt.Println("get public key first")
				continue
			}
			fmt.Printf("p=%v, g=%v, y=%v\n", pub.P, pub.G, pub.Y)
		case "5":
			return
		default:
			fmt.Println("invalid choice")
		}
	}
}

func main() {
	scheme := flag.String("scheme", "rsa", "rsa or elgamal")
	flag.Parse()

	fmt.Printf("%s program for A (sender)\n", *scheme)
	fmt.Println("\nA gets public key from B, encrypts, sends ciphertext")

	in := bufio.NewReader(os.Stdin)
	switch *scheme {
	case "rsa":
		runRSA(in)
	case "elgamal":
		runElGamal(in)
	default:
		fmt.Printf("unknown scheme %q\n", *scheme)
		os.Exit(1)
	}
}
