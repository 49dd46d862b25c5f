// Package project resolves the paths and files that make up a Poetry
// project: the required pyproject.toml manifest, the optional poetry.lock,
// and the optional envup.yaml tool config.
package project
