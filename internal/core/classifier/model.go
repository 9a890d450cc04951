package classifier

import "fmt"

// Model is the bundled lexical scorer
// thresholds were tuned against open phishing feeds, not learned at runtime
type Model struct {
	name    string
	version string
}

// NewModel constructs the bundled model
func NewModel() *Model {
	return &Model{name: "lexical-heuristic", version: "1.2.0"}
}

// Name returns the model identifier
func (m *Model) Name() string { return m.name }

// Version returns the model version string
func (m *Model) Version() string { return m.version }

// verdict cut points on the accumulated risk score
const (
	maliciousThreshold  = 0.70
	suspiciousThreshold = 0.35
)

// Classify scores one normalized host. Never returns an error:
// inputs with no usable signal come back benign with low-ish confidence
func (m *Model) Classify(host string) Outcome {
	feats := extractFeatures(host)

	if target, dist, ok := findTyposquat(host); ok {
		t, d := target, dist
		conf := 0.9 - 0.1*float64(dist-1)
		return Outcome{
			Domain:          host,
			Verdict:         VerdictMalicious,
			Confidence:      conf,
			Method:          MethodTyposquat,
			Reason:          fmt.Sprintf("edit distance %d from %s", dist, target),
			Stage:           "typosquat",
			Features:        feats,
			TyposquatTarget: &t,
			EditDistance:    &d,
		}
	}

	score, reason := scoreFeatures(feats)
	switch {
	case score >= maliciousThreshold:
		return Outcome{
			Domain:     host,
			Verdict:    VerdictMalicious,
			Confidence: clamp(0.5+score/2, 0, 0.95),
			Method:     MethodHeuristic,
			Reason:     reason,
			Stage:      "lexical",
			Features:   feats,
		}
	case score >= suspiciousThreshold:
		return Outcome{
			Domain:     host,
			Verdict:    VerdictSuspicious,
			Confidence: clamp(0.45+score/3, 0, 0.85),
			Method:     MethodHeuristic,
			Reason:     reason,
			Stage:      "lexical",
			Features:   feats,
		}
	default:
		return Outcome{
			Domain:     host,
			Verdict:    VerdictBenign,
			Confidence: clamp(0.98-score, 0.5, 0.98),
			Method:     MethodHeuristic,
			Reason:     "no strong risk signals",
			Stage:      "lexical",
			Features:   feats,
		}
	}
}

// scoreFeatures folds the feature vector into a risk score and picks
// the dominant signal as the human readable reason
func scoreFeatures(f map[string]float64) (float64, string) {
	type signal struct {
		weight float64
		reason string
	}
	var fired []signal

	if f["entropy"] > 3.8 {
		fired = append(fired, signal{0.30, "high entropy hostname"})
	}
	if f["length"] > 25 {
		fired = append(fired, signal{0.15, "unusually long hostname"})
	}
	if f["digit_ratio"] > 0.30 {
		fired = append(fired, signal{0.20, "digit heavy hostname"})
	}
	if f["vowel_ratio"] < 0.20 && f["length"] > 6 {
		fired = append(fired, signal{0.15, "consonant heavy hostname"})
	}
	if f["hyphen_count"] >= 3 {
		fired = append(fired, signal{0.10, "excessive hyphenation"})
	}
	if f["subdomain_depth"] > 3 {
		fired = append(fired, signal{0.10, "deeply nested subdomains"})
	}
	if r := f["tld_risk"]; r > 0 {
		fired = append(fired, signal{0.25 * r, "high risk tld"})
	}

	var score float64
	best := signal{reason: "no strong risk signals"}
	for _, s := range fired {
		score += s.weight
		if s.weight > best.weight {
			best = s
		}
	}
	return clamp(score, 0, 1), best.reason
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
