// Domain normalization pipeline
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization
// 3 Case folding
// 4 Remove combining marks and format chars
// 5 Width fold fullwidth to ASCII
// 6 Strip scheme, path, port and the trailing root dot

package classifier

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map fullwidth forms to ASCII
		)
	},
}

// NormalizeDomain returns the canonical hostname form of raw
func NormalizeDomain(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	// strip scheme and anything after the host
	if i := strings.Index(ns, "://"); i >= 0 {
		ns = ns[i+3:]
	}
	if i := strings.IndexAny(ns, "/?#"); i >= 0 {
		ns = ns[:i]
	}
	// strip userinfo and port
	if i := strings.LastIndex(ns, "@"); i >= 0 {
		ns = ns[i+1:]
	}
	ns = stripPort(ns)

	ns = strings.TrimSuffix(ns, ".")
	return strings.TrimSpace(ns)
}

// stripPort removes a trailing :port, leaving bracketed IPv6 literals and
// bare colon-bearing hosts intact
func stripPort(host string) string {
	if strings.HasPrefix(host, "[") {
		if i := strings.Index(host, "]"); i >= 0 {
			return host[:i+1]
		}
		return host
	}
	i := strings.LastIndex(host, ":")
	if i < 0 {
		return host
	}
	for _, r := range host[i+1:] {
		if r < '0' || r > '9' {
			return host
		}
	}
	return host[:i]
}

// labels splits a hostname into its dot separated parts, dropping empties
func labels(host string) []string {
	parts := strings.Split(host, ".")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// registrable returns the last two labels joined, or the host when shorter
func registrable(host string) string {
	ls := labels(host)
	if len(ls) < 2 {
		return host
	}
	return ls[len(ls)-2] + "." + ls[len(ls)-1]
}
