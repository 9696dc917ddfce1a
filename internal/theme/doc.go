// Package theme composes a site configuration into the object the
// generator's theme reads.
//
// Assembly is pure: it reads the configuration, never mutates it, and returns
// fresh maps and slices on every call. Malformed values are passed through;
// config.Validate is the place that rejects them.
package theme
