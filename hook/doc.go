// Package hook defines the vocabulary for attaching runtime behavior to
// fixed points in a host firmware: filter hooks that may consume a call,
// and before hooks that only observe it.
package hook
