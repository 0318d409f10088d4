// Package version holds the build version, overridden at link time with
// -ldflags "-X github.com/battlesnakeio/termsnake/version.Version=...".
package version

// Version of the snake binary.
var Version = "dev"
