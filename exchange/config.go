package exchange

// Config bundles the knobs a demonstration run needs.
type Config struct {
	Scheme     string // "rsa" or "elgamal"
	Bits       int    // modulus size for the receiver's key
	BreakBound int64  // max search steps for the interceptor
}

// Cipher resolves the configured scheme.
func (c Config) Cipher() (Cipher, error) {
	return ByName(c.Scheme)
}
