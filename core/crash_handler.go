package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/ttacon/chalk"
)

var crashCleanup atomic.Pointer[func()]

// SetCrashCleanup registers a hook run before the crash report is printed
// The terminal binary restores the screen here; nil clears the hook
func SetCrashCleanup(fn func()) {
	if fn == nil {
		crashCleanup.Store(nil)
		return
	}
	crashCleanup.Store(&fn)
}

// runCrashCleanup invokes the registered hook once, swallowing a nested panic
func runCrashCleanup() {
	p := crashCleanup.Swap(nil)
	if p == nil {
		return
	}
	defer func() { _ = recover() }()
	(*p)()
}

// HandleCrash is the unified panic handler that runs cleanup and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	runCrashCleanup()

	os.Stdout.Sync()

	// \r\n keeps the report readable if the terminal is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n%s\r\n", chalk.Red.Color(fmt.Sprintf("CRASH DETECTED: %v", r)))
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

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
