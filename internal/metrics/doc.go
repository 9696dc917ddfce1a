// Package metrics records render outcomes for watch mode.
//
// Components hold a Recorder and default to NoopRecorder, so no call site
// needs a nil check. When `blogsite watch --metrics-addr` is used the
// Prometheus implementation is injected and served over HTTP.
package metrics
