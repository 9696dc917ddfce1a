// Package testing provides shared helpers for blogsite tests.
//
// SiteBuilder assembles valid site configurations fluently so tests only
// spell out the fields they care about:
//
//	cfg := testing.NewSiteBuilder(t).
//		WithNavbarVariant("legacy", config.NavItem{Text: "Index", Link: "/"}).
//		WithPlugin("comment", config.DisabledPlugin()).
//		Build()
package testing
