// Package paginator implements a pagination state engine: it tracks a
// total item count, a page size, and a 1-based current page, derives the
// total page count and the item index bounds of the current page, and
// validates page-change requests.
//
// The engine is the state half of a paging widget. It performs no
// rendering; a presentation layer (CLI table, TUI, HTTP handler) reads the
// accessors, calls the mutators, and subscribes to change notifications
// to re-render. See internal/tui and internal/cli for example consumers.
//
// Change notifications are synchronous and run in registration order.
// Handlers observe fully mutated state and may themselves call SetPage or
// detach subscriptions; the engine does not guard against notification
// loops. The engine is not safe for concurrent use — callers embedding it
// in a multi-goroutine host must add their own locking.
package paginator
