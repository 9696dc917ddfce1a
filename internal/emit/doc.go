// Package emit writes an assembled theme object as generator config files.
//
// Three formats are supported: a TypeScript config module (config.ts), JSON
// and YAML. Each artifact carries a content fingerprint; files whose
// fingerprint has not changed are left untouched so the generator's own
// watcher does not rebuild needlessly.
package emit
