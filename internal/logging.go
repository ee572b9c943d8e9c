package internal

import (
	"log"
	"os"
)

func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}

// RequestLogger returns a logger that tags every line with a request ID.
func RequestLogger(id string) *log.Logger {
	return log.New(log.Writer(), "["+id+"] ", log.Flags()|log.Lmsgprefix)
}
