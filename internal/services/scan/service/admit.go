package service

import (
	"strings"

	perr "dnsguard/internal/platform/errors"
)

// admit validates and dedupes a submitted domain list
// duplicates compare by exact string, first occurrence wins and order is kept
func admit(domains []string, maxBatch int) ([]string, error) {
	cleaned := make([]string, 0, len(domains))
	for _, d := range domains {
		if t := strings.TrimSpace(d); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	if len(cleaned) == 0 {
		return nil, perr.Validationf("no domains provided")
	}

	seen := make(map[string]struct{}, len(cleaned))
	out := cleaned[:0]
	for _, d := range cleaned {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}

	// the cap applies to unique domains, a duplicate-heavy list can still fit
	if len(out) > maxBatch {
		return nil, perr.BatchTooLargef("batch of %d exceeds limit of %d", len(out), maxBatch)
	}
	return out, nil
}
