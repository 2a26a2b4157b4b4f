// Package swaptest provides mocks and helpers for testing handlers,
// decorators and the application itself.
package swaptest
