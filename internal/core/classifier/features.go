package classifier

import (
	"math"
	"strings"
)

// Feature names exposed via the models surface
// keep stable: persisted scan rows reference them
var FeatureNames = []string{
	"length",
	"entropy",
	"digit_ratio",
	"vowel_ratio",
	"hyphen_count",
	"subdomain_depth",
	"tld_risk",
}

// riskyTLDs carry disproportionate abuse rates in open feeds
var riskyTLDs = map[string]float64{
	"tk":   1.0,
	"ml":   1.0,
	"ga":   1.0,
	"cf":   1.0,
	"gq":   1.0,
	"xyz":  0.7,
	"top":  0.7,
	"club": 0.5,
	"work": 0.5,
	"loan": 0.8,
	"zip":  0.6,
	"icu":  0.6,
}

// extractFeatures computes the lexical feature vector for a normalized host
func extractFeatures(host string) map[string]float64 {
	ls := labels(host)

	var tld string
	if len(ls) > 0 {
		tld = ls[len(ls)-1]
	}

	// score the part people actually type, not the tld
	core := host
	if len(ls) > 1 {
		core = strings.Join(ls[:len(ls)-1], ".")
	}

	digits, vowels, hyphens, letters := 0, 0, 0, 0
	for _, r := range core {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '-':
			hyphens++
		case r >= 'a' && r <= 'z':
			letters++
			if strings.ContainsRune("aeiou", r) {
				vowels++
			}
		}
	}

	n := len(core)
	f := map[string]float64{
		"length":          float64(len(host)),
		"entropy":         shannon(core),
		"hyphen_count":    float64(hyphens),
		"subdomain_depth": float64(maxInt(0, len(ls)-2)),
		"tld_risk":        riskyTLDs[tld],
	}
	if n > 0 {
		f["digit_ratio"] = float64(digits) / float64(n)
	} else {
		f["digit_ratio"] = 0
	}
	if letters > 0 {
		f["vowel_ratio"] = float64(vowels) / float64(letters)
	} else {
		f["vowel_ratio"] = 0
	}
	return f
}

// shannon computes character entropy in bits
func shannon(s string) float64 {
	if s == "" {
		return 0
	}
	counts := make(map[rune]int, len(s))
	total := 0
	for _, r := range s {
		counts[r]++
		total++
	}
	var h float64
	for _, c := range counts {
		p := float64(c) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
