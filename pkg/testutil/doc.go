// Package testutil provides utilities for testing svnmanifest components.
//
// Key components:
//   - TestEnvironment: a project directory with isolated XDG and PATH setup
//   - NewTestFS: afero-backed in-memory filesystem for fast, isolated tests
//   - Fake tools: shell scripts standing in for svn and svnadmin
//
// Usage guidelines:
//   - Manifest, resolution and ignore tests should use NewTestFS
//   - Tests that run external processes use EnvIsolated with fake tools
//   - All test data should be defined inline, not in external files
package testutil
