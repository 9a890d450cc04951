package classifier

// Safelist is an immutable snapshot of trusted domains to tier
// build a new one and swap it in rather than mutating
type Safelist struct {
	tiers map[string]string
}

// EmptySafelist returns a snapshot with no entries
func EmptySafelist() *Safelist { return &Safelist{tiers: map[string]string{}} }

// NewSafelist builds a snapshot from domain to tier pairs
// domains are normalized on the way in
func NewSafelist(entries map[string]string) *Safelist {
	tiers := make(map[string]string, len(entries))
	for d, tier := range entries {
		if nd := NormalizeDomain(d); nd != "" {
			tiers[nd] = tier
		}
	}
	return &Safelist{tiers: tiers}
}

// Len reports the number of entries
func (s *Safelist) Len() int { return len(s.tiers) }

// Lookup matches host or any parent suffix against the snapshot
// www.mail.example.com hits an entry for example.com
func (s *Safelist) Lookup(host string) (tier string, ok bool) {
	if host == "" || len(s.tiers) == 0 {
		return "", false
	}
	ls := labels(host)
	for i := 0; i < len(ls); i++ {
		candidate := join(ls[i:])
		if t, hit := s.tiers[candidate]; hit {
			return t, true
		}
	}
	return "", false
}

func join(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	n := len(parts) - 1
	for _, p := range parts {
		n += len(p)
	}
	b := make([]byte, 0, n)
	for i, p := range parts {
		if i > 0 {
			b = append(b, '.')
		}
		b = append(b, p...)
	}
	return string(b)
}
