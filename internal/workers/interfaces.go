// Package workers runs the engine's background loops, currently the audit
// trail writer, behind one aggregate with a single Run call.
package workers

// Worker is a background loop. Run must not block the caller; long-lived
// work is expected to happen on a goroutine the worker spawns itself.
type Worker interface {
	Run()
}
