// Package lockfile handles parsing of poetry.lock files. The lockfile pins
// the exact resolved version of every dependency, enabling reproducible
// installs. envup only ever reads it; Poetry owns the file and its
// content-hash.
package lockfile
