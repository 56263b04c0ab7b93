// Package state is the durable key-value storage behind the cooldown tracker
// and solved-part bookkeeping. Two backends: a zero-infrastructure JSON file
// (default) and MongoDB. Which one, and at what scope (per-workspace path vs
// shared database), is the integrator's config decision.
package state

// Store is a durable string-keyed blob store. Get reports a missing key as
// (_, false, nil); errors are real storage failures.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
