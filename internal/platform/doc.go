// Package platform contains OS integration: per-user configuration and
// definition directories, definition file discovery, and revealing or opening
// files with the system tools.
package platform
