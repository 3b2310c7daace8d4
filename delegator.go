package loom

// foldDelegators composes a delegator chain around a base producer callback.
// Given [d1, d2, ..., dn] in registration order, d1 wraps base, d2 wraps
// d1's callback, and so on; the returned callback is the outermost stage.
// The fold is iterative, so chain length never grows the call stack at
// composition time.
//
// Each stage decides whether and how many times it invokes its inner
// callback; the chain makes no attempt to force exactly-once semantics.
func foldDelegators(c *Container, canonical string, base Callback, chain []DelegatorFactory, options Options) Callback {
	callback := base
	for _, delegator := range chain {
		delegator, inner := delegator, callback
		callback = func() (any, error) {
			return delegator(c, canonical, inner, options)
		}
	}
	return callback
}
