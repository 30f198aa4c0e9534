package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu   sync.Mutex
	crashFini func()
)

// SetCrashFinalizer registers the function that restores the display before a crash report
// The terminal binary passes screen.Fini; nil clears the registration
func SetCrashFinalizer(fini func()) {
	crashMu.Lock()
	crashFini = fini
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the display and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	fini := crashFini
	crashFini = nil
	crashMu.Unlock()

	if fini != nil {
		fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
