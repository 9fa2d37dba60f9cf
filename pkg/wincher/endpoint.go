package wincher

// Endpoint returns the HTTP method and path template bound to an operation.
func Endpoint(name string) (method, path string, ok bool) {
	b, ok := bindings[name]

	if !ok {
		return "", "", false
	}

	return b.Method, b.Path, true
}
