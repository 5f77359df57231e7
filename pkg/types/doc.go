// Package types holds the shared data model: the filesystem
// abstraction, actions, profiles, sessions and reports. It has no
// dependencies on the engine packages so any of them can import it.
package types
