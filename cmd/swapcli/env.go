package main

import (
	"os"
)

// env returns the value of an environment variable if provided (even if empty)
// or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

// defaultKeyPath is where the private key is kept unless SWAPCLI_PRIV_KEY
// says otherwise.
func defaultKeyPath() string {
	return env("SWAPCLI_PRIV_KEY", os.Getenv("HOME")+"/.swapd.priv.key")
}
