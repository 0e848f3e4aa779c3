// Package store defines the persistence interfaces used by the application
// core. The task store has whole-collection read/replace semantics: no
// partial updates, no concurrency control, last writer wins. Concrete
// implementations live under internal/platform.
package store
