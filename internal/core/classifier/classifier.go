// Package classifier scores domains for abuse likelihood
// The bundled model is lexical: it needs no network access and never errors,
// a malformed input just classifies with low confidence
package classifier

import (
	"sync/atomic"
	"time"
)

// Verdict labels
const (
	VerdictMalicious  = "malicious"
	VerdictSuspicious = "suspicious"
	VerdictBenign     = "benign"
)

// Method tags recorded on every outcome
const (
	MethodSafelist  = "safelist"
	MethodHeuristic = "heuristic"
	MethodTyposquat = "typosquat"
	MethodDefault   = "default"
)

// Outcome is the full classification record for one domain
// optional fields are pointers so absent stays distinguishable from zero
type Outcome struct {
	Domain     string
	Verdict    string
	Confidence float64
	Method     string
	Reason     string
	Stage      string
	LatencyMS  float64

	Features        map[string]float64
	TyposquatTarget *string
	EditDistance    *int
	SafelistTier    *string
}

// Detector classifies domains. Implementations must not panic on
// well formed input and must return one outcome per input, in order
type Detector interface {
	PredictOne(domain string, useSafelist bool) Outcome
	PredictMany(domains []string, useSafelist bool) []Outcome
}

// Classifier is the serving wrapper around a model and a safelist snapshot
// a nil model means degraded mode: safelist hits still resolve, everything
// else gets the fixed fallback outcome
type Classifier struct {
	model    *Model
	safelist atomic.Pointer[Safelist]
}

// New builds a Classifier. model may be nil for degraded mode
func New(model *Model) *Classifier {
	c := &Classifier{model: model}
	c.safelist.Store(EmptySafelist())
	return c
}

// ReloadSafelist swaps the safelist snapshot atomically
// in-flight predictions keep the snapshot they started with
func (c *Classifier) ReloadSafelist(s *Safelist) {
	if s == nil {
		s = EmptySafelist()
	}
	c.safelist.Store(s)
}

// SafelistSize reports the number of entries in the current snapshot
func (c *Classifier) SafelistSize() int { return c.safelist.Load().Len() }

// Degraded reports whether the classifier runs without a model
func (c *Classifier) Degraded() bool { return c.model == nil }

// ModelInfo returns the serving model's identity, empty in degraded mode
func (c *Classifier) ModelInfo() (name, version string) {
	if c.model == nil {
		return "", ""
	}
	return c.model.Name(), c.model.Version()
}

// PredictOne classifies a single domain
func (c *Classifier) PredictOne(domain string, useSafelist bool) Outcome {
	start := time.Now()
	out := c.classify(domain, useSafelist)
	out.LatencyMS = float64(time.Since(start).Microseconds()) / 1000.0
	return out
}

// PredictMany classifies domains in order, one outcome per input
func (c *Classifier) PredictMany(domains []string, useSafelist bool) []Outcome {
	out := make([]Outcome, 0, len(domains))
	for _, d := range domains {
		out = append(out, c.PredictOne(d, useSafelist))
	}
	return out
}

func (c *Classifier) classify(domain string, useSafelist bool) Outcome {
	norm := NormalizeDomain(domain)

	if useSafelist {
		if tier, ok := c.safelist.Load().Lookup(norm); ok {
			t := tier
			return Outcome{
				Domain:       norm,
				Verdict:      VerdictBenign,
				Confidence:   1.0,
				Method:       MethodSafelist,
				Reason:       "domain on safelist",
				Stage:        "safelist",
				SafelistTier: &t,
			}
		}
	}

	if c.model == nil {
		return Outcome{
			Domain:     norm,
			Verdict:    VerdictSuspicious,
			Confidence: 0.5,
			Method:     MethodDefault,
			Reason:     "model unavailable, defaulting to suspicious",
			Stage:      "fallback",
		}
	}

	return c.model.Classify(norm)
}
