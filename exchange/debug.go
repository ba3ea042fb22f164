package exchange

import (
	"fmt"
	"log"
	"os"
)

// Debug logging is controlled by environment variables so the role
// programs can be run verbose without recompiling.
func IsDebug() bool {
	return os.Getenv("CIPHERCLASS_DEBUG") != ""
}

func IsDump() bool {
	return os.Getenv("CIPHERCLASS_DUMP") != ""
}

func DPrintf(format string, a ...interface{}) {
	log.SetFlags(log.Lmicroseconds)
	if IsDebug() {
		log.Printf(format, a...)
	}
}

func assertf(condition bool, format string, a ...interface{}) {
	if IsDebug() && !condition {
		panic(fmt.Sprintf(format, a...))
	}
}
