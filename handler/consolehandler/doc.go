// Package consolehandler provides console output handlers that write
// formatted records to any io.Writer (default: os.Stdout).
//
// Handlers are split into specialized sync and async variants:
//
//   - SyncConsoleHandler formats and writes on the caller's goroutine.
//     Uses TryLock so that parallel callers format outside the lock.
//   - AsyncConsoleHandler hands records to a bounded queue drained by a
//     dedicated background goroutine. Callers block while the queue is
//     full; records are never dropped.
//
// The factory function NewConsoleHandler automatically chooses the
// right variant based on the Async field in ConsoleConfig.
package consolehandler
