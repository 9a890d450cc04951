package classifier

import (
	"strings"
	"testing"
)

// TestPredictOne_SafelistHit forces benign with full confidence on a listed domain
func TestPredictOne_SafelistHit(t *testing.T) {
	t.Parallel()

	c := New(NewModel())
	c.ReloadSafelist(NewSafelist(map[string]string{"example.com": "tier1"}))

	out := c.PredictOne("example.com", true)
	if out.Verdict != VerdictBenign {
		t.Fatalf("verdict got=%q want=%q", out.Verdict, VerdictBenign)
	}
	if out.Confidence != 1.0 {
		t.Fatalf("confidence got=%v want=1.0", out.Confidence)
	}
	if out.Method != MethodSafelist {
		t.Fatalf("method got=%q want=%q", out.Method, MethodSafelist)
	}
	if out.SafelistTier == nil || *out.SafelistTier != "tier1" {
		t.Fatalf("tier got=%v want=tier1", out.SafelistTier)
	}
}

// TestPredictOne_SafelistSubdomain matches a subdomain against a parent entry
func TestPredictOne_SafelistSubdomain(t *testing.T) {
	t.Parallel()

	c := New(NewModel())
	c.ReloadSafelist(NewSafelist(map[string]string{"example.com": "tier2"}))

	out := c.PredictOne("www.mail.example.com", true)
	if out.Method != MethodSafelist {
		t.Fatalf("method got=%q want=%q", out.Method, MethodSafelist)
	}
	if out.SafelistTier == nil || *out.SafelistTier != "tier2" {
		t.Fatalf("tier got=%v want=tier2", out.SafelistTier)
	}
}

// TestPredictOne_SafelistDisabled skips the safelist when asked to
func TestPredictOne_SafelistDisabled(t *testing.T) {
	t.Parallel()

	c := New(NewModel())
	c.ReloadSafelist(NewSafelist(map[string]string{"example.com": "tier1"}))

	out := c.PredictOne("example.com", false)
	if out.Method == MethodSafelist {
		t.Fatalf("safelist should be bypassed, method=%q", out.Method)
	}
}

// TestPredictOne_Degraded returns the fixed fallback when no model is loaded
func TestPredictOne_Degraded(t *testing.T) {
	t.Parallel()

	c := New(nil)
	if !c.Degraded() {
		t.Fatalf("expected degraded mode")
	}

	out := c.PredictOne("whatever.example", true)
	if out.Verdict != VerdictSuspicious {
		t.Fatalf("verdict got=%q want=%q", out.Verdict, VerdictSuspicious)
	}
	if out.Confidence != 0.5 {
		t.Fatalf("confidence got=%v want=0.5", out.Confidence)
	}
	if out.Method != MethodDefault {
		t.Fatalf("method got=%q want=%q", out.Method, MethodDefault)
	}
	if out.Stage != "fallback" {
		t.Fatalf("stage got=%q want=fallback", out.Stage)
	}
}

// TestPredictOne_DegradedSafelistStillWins safelist hits resolve even without a model
func TestPredictOne_DegradedSafelistStillWins(t *testing.T) {
	t.Parallel()

	c := New(nil)
	c.ReloadSafelist(NewSafelist(map[string]string{"example.com": "tier1"}))

	out := c.PredictOne("example.com", true)
	if out.Verdict != VerdictBenign || out.Method != MethodSafelist {
		t.Fatalf("got verdict=%q method=%q", out.Verdict, out.Method)
	}
}

// TestPredictMany_OrderAndCount one outcome per input, same order as given
func TestPredictMany_OrderAndCount(t *testing.T) {
	t.Parallel()

	c := New(NewModel())
	c.ReloadSafelist(NewSafelist(map[string]string{"good.example": "tier1"}))

	in := []string{"good.example", "x9k-2q.tk", "plain.org"}
	outs := c.PredictMany(in, true)

	if len(outs) != len(in) {
		t.Fatalf("count got=%d want=%d", len(outs), len(in))
	}
	for i, out := range outs {
		if out.Domain != NormalizeDomain(in[i]) {
			t.Fatalf("outcome %d misaligned: got=%q want=%q", i, out.Domain, NormalizeDomain(in[i]))
		}
	}
	if outs[0].Method != MethodSafelist {
		t.Fatalf("first outcome should be safelist, got %q", outs[0].Method)
	}
}

// TestPredictMany_Empty returns an empty non-nil slice
func TestPredictMany_Empty(t *testing.T) {
	t.Parallel()

	c := New(NewModel())
	outs := c.PredictMany(nil, true)
	if outs == nil || len(outs) != 0 {
		t.Fatalf("empty input should yield empty slice, got %#v", outs)
	}
}

// TestReloadSafelist_SwapsSnapshot a reload takes effect for new predictions
func TestReloadSafelist_SwapsSnapshot(t *testing.T) {
	t.Parallel()

	c := New(NewModel())
	if c.SafelistSize() != 0 {
		t.Fatalf("fresh classifier should have empty safelist, size=%d", c.SafelistSize())
	}

	c.ReloadSafelist(NewSafelist(map[string]string{"a.com": "tier1", "b.com": "tier3"}))
	if c.SafelistSize() != 2 {
		t.Fatalf("size got=%d want=2", c.SafelistSize())
	}

	c.ReloadSafelist(nil)
	if c.SafelistSize() != 0 {
		t.Fatalf("nil reload should clear, size=%d", c.SafelistSize())
	}
}

// TestClassify_TyposquatVerdict a one-edit brand lookalike comes back malicious
func TestClassify_TyposquatVerdict(t *testing.T) {
	t.Parallel()

	c := New(NewModel())
	out := c.PredictOne("gogle.com", false)

	if out.Verdict != VerdictMalicious {
		t.Fatalf("verdict got=%q want=%q", out.Verdict, VerdictMalicious)
	}
	if out.Method != MethodTyposquat {
		t.Fatalf("method got=%q want=%q", out.Method, MethodTyposquat)
	}
	if out.TyposquatTarget == nil || *out.TyposquatTarget != "google.com" {
		t.Fatalf("target got=%v want=google.com", out.TyposquatTarget)
	}
	if out.EditDistance == nil || *out.EditDistance != 1 {
		t.Fatalf("distance got=%v want=1", out.EditDistance)
	}
	if !strings.Contains(out.Reason, "edit distance") {
		t.Fatalf("reason missing edit distance: %q", out.Reason)
	}
}

// TestClassify_BenignPlainDomain a short common shaped name scores benign
func TestClassify_BenignPlainDomain(t *testing.T) {
	t.Parallel()

	c := New(NewModel())
	out := c.PredictOne("weather.org", false)

	if out.Verdict != VerdictBenign {
		t.Fatalf("verdict got=%q want=%q (conf=%v reason=%q)", out.Verdict, VerdictBenign, out.Confidence, out.Reason)
	}
	if out.Method != MethodHeuristic {
		t.Fatalf("method got=%q want=%q", out.Method, MethodHeuristic)
	}
	if out.Features == nil {
		t.Fatalf("features missing on heuristic outcome")
	}
}

// TestClassify_RiskySignalsStack a risky TLD plus digit soup is not benign
func TestClassify_RiskySignalsStack(t *testing.T) {
	t.Parallel()

	c := New(NewModel())
	out := c.PredictOne("x9k7-2qwz-8831-secure-login.tk", false)

	if out.Verdict == VerdictBenign {
		t.Fatalf("expected non benign verdict, got %q conf=%v reason=%q", out.Verdict, out.Confidence, out.Reason)
	}
}

// TestPredictOne_LatencyRecorded every outcome carries a latency measurement
func TestPredictOne_LatencyRecorded(t *testing.T) {
	t.Parallel()

	c := New(NewModel())
	out := c.PredictOne("example.org", false)
	if out.LatencyMS < 0 {
		t.Fatalf("latency should be non negative, got %v", out.LatencyMS)
	}
}
