// Package poetry provides a wrapper around the Poetry CLI commands used by
// envup. It handles binary resolution, local config writes, and dependency
// installation without depending on other internal packages. Poetry is
// treated as opaque: its output is never parsed and failures are never
// retried.
package poetry
