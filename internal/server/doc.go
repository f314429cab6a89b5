// Package server wires and runs the application's transport servers.
//
// It provides orchestration for the HTTP server lifecycle, including
// startup, signal handling, and graceful shutdown. Shutdown hooks let the
// application drain the batch queue and flush delivery statistics after the
// transport has stopped accepting requests.
package server
