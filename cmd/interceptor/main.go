package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/cipherclass/cipherclass/elgamal"
	"github.com/cipherclass/cipherclass/rsa"
)

// role C: knows only the public key and a ciphertext, tries to decrypt.

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

func interceptRSA(in *bufio.Reader, bound int64) {
	fmt.Println("\nC intercepted public key and ciphertext")

	n := readInt(in, "n = ", 2)
	if n == nil {
		return
	}
	e := readInt(in, "e = ", 2)
	if e == nil {
		return
	}
	c := readInt(in, "c = ", 0)
	if c == nil {
		return
	}
	pub := &rsa.PublicKey{N: n, E: e}

	fmt.Printf("\nC knows: n=%v, e=%v, c=%v\n", n, e, c)
	fmt.Println("C doesn't know: p, q, d, phi(n)")
	fmt.Println("\nto find d:")
	fmt.Println("1. factor n = p*q")
	fmt.Println("2. compute phi(n) = (p-1)(q-1)")
	fmt.Println("3. compute d = e^-1 mod phi(n)")
	fmt.Println("4. decrypt: m = c^d mod n")

	fmt.Printf("\ntrying trial division up to %d\n", bound)
	res, err := rsa.Break(pub, c, bound)
	if errors.Is(err, rsa.ErrSearchExhausted) {
		fmt.Printf("trial division failed, trying pollard p-1 with bound %d\n", bound)
		res, err = rsa.BreakPollard(pub, c, bound)
	}
	if err != nil {
		fmt.Printf("can't factor n=%v: %v\n", n, err)
		fmt.Println("for real key sizes this is impossible; C can't decrypt")
		return
	}

	fmt.Printf("found: p=%v, q=%v\n", res.P, res.Q)
	fmt.Printf("d = %v\n", res.Key.D)
	fmt.Printf("decrypted: m = %v\n", res.M)
	if msg, err := rsa.ExtractMsg(res.M); err == nil {
		fmt.Printf("as text: %q\n", string(msg))
	}
	fmt.Printf("(only works because n is small: %v)\n", n)
}

func interceptElGamal(in *bufio.Reader, bound int64) {
	fmt.Println("\nC intercepted public key and ciphertext")

	p := readInt(in, "p = ", 3)
	if p == nil {
		return
	}
	g := readInt(in, "g = ", 2)
	if g == nil {
		return
	}
	y := readInt(in, "y = ", 1)
	if y == nil {
		return
	}
	c1 := readInt(in, "c1 = ", 0)
	if c1 == nil {
		return
	}
	c2 := readInt(in, "c2 = ", 0)
	if c2 == nil {
		return
	}
	pub := &elgamal.PublicKey{P: p, G: g, Y: y}

	fmt.Printf("\nC knows: p=%v, g=%v, y=%v, (c1, c2)=(%v, %v)\n", p, g, y, c1, c2)
	fmt.Println("C doesn't know: x")
	fmt.Println("\nto find x, solve g^x = y mod p (discrete log)")

	fmt.Printf("\ntrying brute force up to %d\n", bound)
	res, err := elgamal.Break(pub, c1, c2, bound)
	if err != nil {
		fmt.Printf("can't find x: %v\n", err)
		fmt.Println("for real key sizes this is impossible; C can't decrypt")
		return
	}

	fmt.Printf("found: x = %v\n", res.X)
	fmt.Printf("decrypted: m = %v\n", res.M)
	if msg, err := elgamal.ExtractMsg(res.M); err == nil {
		fmt.Printf("as text: %q\n", string(msg))
	}
	fmt.Printf("(only works because p is small: %v)\n", p)
}

func main() {
	scheme := flag.String("scheme", "rsa", "rsa or elgamal")
	bound := flag.Int64("bound", 10000, "max search steps before giving up")
	flag.Parse()

	fmt.Printf("%s program for C (interceptor)\n", *scheme)
	fmt.Println("\nC intercepts public key and ciphertext, tries to decrypt")

	in := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("\n1. try to intercept and decrypt")
		fmt.Println("2. exit")

		switch readLine(in, "\nselect: ") {
		case "1":
			switch *scheme {
			case "rsa":
				interceptRSA(in, *bound)
			case "elgamal":
				interceptElGamal(in, *bound)
			default:
				fmt.Printf("unknown scheme %q\n", *scheme)
				os.Exit(1)
			}
			fmt.Println("\n---")
		case "2":
			return
		default:
			fmt.Println("invalid choice")
		}
	}
}
