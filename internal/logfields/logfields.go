package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID       = "run_id"
	KeyPath        = "path"
	KeyFormat      = "format"
	KeyVariant     = "navbar_variant"
	KeyFingerprint = "fingerprint"
	KeyDurationMS  = "duration_ms"
	KeyPlugin      = "plugin"
	KeyRepo        = "repository"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr { return slog.String(KeyRunID, id) }
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }
func Format(f string) slog.Attr { return slog.String(KeyFormat, f) }
func Variant(v string) slog.Attr { return slog.String(KeyVariant, v) }
func Fingerprint(fp string) slog.Attr { return slog.String(KeyFingerprint, fp) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Plugin(name string) slog.Attr { return slog.String(KeyPlugin, name) }
func Repository(r string) slog.Attr { return slog.String(KeyRepo, r) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
