package main

import (
	crand "crypto/rand"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/cipherclass/cipherclass/bbs"
	"github.com/cipherclass/cipherclass/exchange"
	"github.com/cipherclass/cipherclass/network"
)

// scripted end-to-end run: A fetches B's public key and sends a message,
// while C wiretaps the rpc traffic and then tries to break what it saw.

func main() {
	scheme := flag.String("scheme", "rsa", "rsa or elgamal")
	bits := flag.Int("bits", 32, "modulus size (keep small so C can win)")
	bound := flag.Int64("bound", 1<<18, "max search steps for C")
	msg := flag.String("msg", "hi", "message for A to send")
	useBBS := flag.Bool("bbs", false, "draw randomness from a blum-blum-shub generator")
	useLibp2p := flag.Bool("libp2p", false, "run the rpcs over libp2p instead of in-process")
	flag.Parse()

	cfg := exchange.Config{Scheme: *scheme, Bits: *bits, BreakBound: *bound}
	cipher, err := cfg.Cipher()
	if err != nil {
		log.Fatalf("err: %v", err)
	}

	var random io.Reader = crand.Reader
	if *useBBS {
		g, err := bbs.New(crand.Reader, 128)
		if err != nil {
			log.Fatalf("err: %v", err)
		}
		random = g
		fmt.Println("using blum-blum-shub randomness")
	}

	receiver, err := exchange.NewReceiver(cipher, random, cfg.Bits)
	if err != nil {
		log.Fatalf("err: %v", err)
	}

	var cp network.ConnectionProvider
	ic := exchange.NewInterceptor()
	if *useLibp2p {
		lp, err := network.NewLibp2p("/ip4/0.0.0.0/tcp/0")
		if err != nil {
			log.Fatalf("err: %v", err)
		}
		defer lp.Close()
		if err := lp.Register(receiver); err != nil {
			log.Fatalf("err: %v", err)
		}
		fmt.Printf("B is listening at %s\n", lp.Me())
		fmt.Println("(C cannot wiretap the libp2p transport; its streams are encrypted)")
		cp = network.NewDirectory(lp, []string{lp.Me()})
	} else {
		local := network.NewLocal(receiver)
		local.AddWiretap(ic)
		cp = local
	}

	sender := exchange.NewSender(cipher, random, cp, 0)
	if err := sender.FetchKey(); err != nil {
		log.Fatalf("err: %v", err)
	}
	fmt.Printf("A fetched B's %s public key\n", *scheme)

	if err := sender.Send(*msg); err != nil {
		log.Fatalf("err: %v", err)
	}
	fmt.Printf("A sent %q\n", *msg)
	fmt.Printf("B received: %q\n", receiver.Received())

	if *useLibp2p {
		return
	}

	fmt.Printf("\nC captured %d ciphertext(s), attacking with bound %d\n", ic.Captured(), cfg.BreakBound)
	broken, err := ic.Break(cfg.BreakBound)
	if err != nil {
		fmt.Printf("C failed: %v\n", err)
		return
	}
	for _, m := range broken {
		fmt.Printf("C recovered: %q\n", m)
	}
}
