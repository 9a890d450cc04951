package service

import (
	"context"
	"fmt"

	"dnsguard/internal/core/classifier"
)

// runJob drives one batch from pending to a terminal state
// a single bad domain or a failed row insert never sinks the batch
func (s *Svc) runJob(ctx context.Context, jobID, userID string, domains []string, useSafelist bool) {
	log := s.log.With().Str("job_id", jobID).Logger()

	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Any("panic", rec).Msg("batch runner panicked")
			s.failJob(ctx, jobID, fmt.Sprintf("internal error: %v", rec))
		}
	}()

	if err := s.Repo.MarkJobProcessing(ctx, jobID); err != nil {
		log.Error().Err(err).Msg("mark processing failed")
		s.failJob(ctx, jobID, "could not start job: "+err.Error())
		return
	}

	outcomes := s.predictAll(domains, useSafelist)

	var processed, malicious, suspicious, benign int
	for _, out := range outcomes {
		row := resultFromOutcome(out, userID, &jobID)
		if err := s.Repo.InsertScan(ctx, row); err != nil {
			log.Warn().Err(err).Str("domain", out.Domain).Msg("scan row insert failed, skipping")
			continue
		}

		processed++
		switch out.Verdict {
		case classifier.VerdictMalicious:
			malicious++
		case classifier.VerdictSuspicious:
			suspicious++
		case classifier.VerdictBenign:
			benign++
		default:
			// persisted but counted in no bucket
			log.Warn().Str("verdict", out.Verdict).Str("domain", out.Domain).Msg("unrecognized verdict label")
		}

		if processed%s.cfg.CheckpointEvery == 0 {
			if err := s.Repo.CheckpointJob(ctx, jobID, processed, malicious, suspicious, benign); err != nil {
				log.Warn().Err(err).Int("processed", processed).Msg("checkpoint failed")
			}
		}
	}

	if err := s.Repo.CompleteJob(ctx, jobID, len(domains), malicious, suspicious, benign); err != nil {
		log.Error().Err(err).Msg("finalize failed")
		s.failJob(ctx, jobID, "could not finalize job: "+err.Error())
		return
	}
	log.Info().
		Int("total", len(domains)).
		Int("malicious", malicious).
		Int("suspicious", suspicious).
		Int("benign", benign).
		Msg("batch completed")
}

// predictAll classifies the whole batch, degrading to per-domain calls when
// the bulk path blows up and to the fixed fallback when a single call does
func (s *Svc) predictAll(domains []string, useSafelist bool) (outs []classifier.Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			s.log.Warn().Any("panic", rec).Msg("bulk classify panicked, retrying per domain")
			outs = s.predictEach(domains, useSafelist)
		}
	}()
	return s.det.PredictMany(domains, useSafelist)
}

func (s *Svc) predictEach(domains []string, useSafelist bool) []classifier.Outcome {
	outs := make([]classifier.Outcome, 0, len(domains))
	for _, d := range domains {
		outs = append(outs, s.predictSafe(d, useSafelist))
	}
	return outs
}

func (s *Svc) predictSafe(d string, useSafelist bool) (out classifier.Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			out = classifier.Outcome{
				Domain:     d,
				Verdict:    classifier.VerdictSuspicious,
				Confidence: 0.5,
				Method:     classifier.MethodDefault,
				Reason:     "classification failed, defaulting to suspicious",
				Stage:      "fallback",
			}
		}
	}()
	return s.det.PredictOne(d, useSafelist)
}

func (s *Svc) failJob(ctx context.Context, jobID, msg string) {
	// best effort, the job may already be terminal
	if err := s.Repo.FailJob(ctx, jobID, msg); err != nil {
		s.log.Error().Err(err).Str("job_id", jobID).Msg("mark failed failed")
	}
}
