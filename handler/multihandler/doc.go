// Package multihandler provides a fan-out handler that dispatches each
// record or raw line to several child handlers in order.
package multihandler
