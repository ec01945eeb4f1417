// Package version holds the build version shared by the calculator
// binaries.
package version

// Version is set at build time via -ldflags "-X ...version.Version=v1.2.3".
var Version = "dev"
