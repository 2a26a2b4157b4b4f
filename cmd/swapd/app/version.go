package swapd

// Version should be set by release tag, for example with
// -ldflags "-X github.com/iov-one/swap/cmd/swapd/app.Version=v1.0.1"
var Version = "0.1.0-dev"
