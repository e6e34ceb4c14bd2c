// Package config handles configuration management for svnmanifest.
// Settings are layered, later sources overriding earlier ones: embedded
// defaults, the user config file, the project config file, SVNMANIFEST_*
// environment variables and finally command-line flags.
package config
