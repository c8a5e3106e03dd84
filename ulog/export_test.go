package ulog

// SetExitFunc overrides the function called after a Fatal/Fatalf event,
// so tests can observe the call without actually terminating the process.
func SetExitFunc(fn func(int)) (restore func()) {
	mu.Lock()
	prev := exitOnFail
	exitOnFail = fn
	mu.Unlock()
	return func() {
		mu.Lock()
		exitOnFail = prev
		mu.Unlock()
	}
}
