package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"dnsguard/internal/core/classifier"
	"dnsguard/internal/modkit/repokit"
	perr "dnsguard/internal/platform/errors"
	"dnsguard/internal/platform/store"

	"dnsguard/internal/services/scan/domain"
	"dnsguard/internal/services/scan/repo"
)

// memRepo is an in-memory repo.Repo recording jobs, scans and checkpoints
type memRepo struct {
	mu             sync.Mutex
	jobs           map[string]domain.Job
	scans          []domain.ScanResult
	checkpoints    []int
	failInsert     map[string]bool // domain -> fail InsertScan
	failProcessing bool
	failComplete   bool
}

func newMemRepo() *memRepo {
	return &memRepo{jobs: map[string]domain.Job{}, failInsert: map[string]bool{}}
}

func (m *memRepo) InsertJob(_ context.Context, j domain.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[j.ID] = j
	return nil
}

func (m *memRepo) MarkJobProcessing(_ context.Context, jobID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failProcessing {
		return errors.New("mark processing failed")
	}
	j := m.jobs[jobID]
	j.Status = domain.JobProcessing
	m.jobs[jobID] = j
	return nil
}

func (m *memRepo) CheckpointJob(_ context.Context, jobID string, processed, mal, susp, ben int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j := m.jobs[jobID]
	j.ProcessedDomains = processed
	j.MaliciousCount, j.SuspiciousCount, j.BenignCount = mal, susp, ben
	m.jobs[jobID] = j
	m.checkpoints = append(m.checkpoints, processed)
	return nil
}

func (m *memRepo) CompleteJob(_ context.Context, jobID string, processed, mal, susp, ben int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failComplete {
		return errors.New("finalize failed")
	}
	j := m.jobs[jobID]
	j.ProcessedDomains = processed
	j.MaliciousCount, j.SuspiciousCount, j.BenignCount = mal, susp, ben
	j.Status = domain.JobCompleted
	now := time.Now().UTC()
	j.CompletedAt = &now
	m.jobs[jobID] = j
	return nil
}

func (m *memRepo) FailJob(_ context.Context, jobID, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j := m.jobs[jobID]
	j.Status = domain.JobFailed
	j.ErrorMessage = &message
	now := time.Now().UTC()
	j.CompletedAt = &now
	m.jobs[jobID] = j
	return nil
}

func (m *memRepo) GetJob(_ context.Context, userID, jobID string) (domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[jobID]
	if !ok || j.UserID != userID {
		return domain.Job{}, perr.NotFoundf("batch job %s not found", jobID)
	}
	return j, nil
}

func (m *memRepo) InsertScan(_ context.Context, s domain.ScanResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failInsert[s.Domain] {
		return errors.New("insert failed")
	}
	m.scans = append(m.scans, s)
	return nil
}

func (m *memRepo) ListJobScans(
	_ context.Context, userID, jobID string, limit, offset int,
) ([]domain.ScanResult, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []domain.ScanResult
	for _, s := range m.scans {
		if s.UserID == userID && s.BatchJobID != nil && *s.BatchJobID == jobID {
			all = append(all, s)
		}
	}
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (m *memRepo) job(t *testing.T, id string) domain.Job {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.jobs[id]
}

// waitTerminal polls until the job leaves pending/processing
func (m *memRepo) waitTerminal(t *testing.T, id string) domain.Job {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		j := m.job(t, id)
		if j.Status == domain.JobCompleted || j.Status == domain.JobFailed {
			return j
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("job %s never reached a terminal state", id)
	return domain.Job{}
}

// scripted detector

type scriptDetector struct {
	verdicts  map[string]string // domain -> verdict, default benign
	panicMany bool
	panicOn   map[string]bool // domain -> panic in PredictOne
}

func (d *scriptDetector) PredictOne(dom string, _ bool) classifier.Outcome {
	if d.panicOn[dom] {
		panic("scripted per-domain failure")
	}
	v := d.verdicts[dom]
	if v == "" {
		v = classifier.VerdictBenign
	}
	return classifier.Outcome{
		Domain:     dom,
		Verdict:    v,
		Confidence: 0.9,
		Method:     classifier.MethodHeuristic,
		Reason:     "scripted",
	}
}

func (d *scriptDetector) PredictMany(doms []string, useSafelist bool) []classifier.Outcome {
	if d.panicMany {
		panic("scripted bulk failure")
	}
	out := make([]classifier.Outcome, 0, len(doms))
	for _, dom := range doms {
		out = append(out, d.PredictOne(dom, useSafelist))
	}
	return out
}

// nopTx satisfies repokit.TxRunner; the memRepo never touches it
type nopTx struct{}

func (nopTx) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (nopTx) Query(context.Context, string, ...any) (store.Rows, error)     { return nil, nil }
func (nopTx) QueryRow(context.Context, string, ...any) store.Row            { return nil }
func (nopTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	return fn(nopTx{})
}

func newTestSvc(r repo.Repo, det classifier.Detector, cfg Config) *Svc {
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return r })
	return New(nopTx{}, binder, det, cfg)
}

func TestSubmitBatch_CompletesWithCounters(t *testing.T) {
	t.Parallel()

	mem := newMemRepo()
	det := &scriptDetector{verdicts: map[string]string{
		"bad.tk":    classifier.VerdictMalicious,
		"meh.xyz":   classifier.VerdictSuspicious,
		"fine.org":  classifier.VerdictBenign,
		"fine2.org": classifier.VerdictBenign,
	}}
	svc := newTestSvc(mem, det, Config{})

	acc, err := svc.SubmitBatch(context.Background(), "user-1", domain.BatchInput{
		Domains: []string{"bad.tk", "meh.xyz", "fine.org", "fine2.org"},
	})
	if err != nil {
		t.Fatalf("SubmitBatch: %v", err)
	}
	if acc.Status != domain.JobPending || acc.TotalDomains != 4 {
		t.Fatalf("unexpected accept: %+v", acc)
	}

	j := mem.waitTerminal(t, acc.JobID)
	if j.Status != domain.JobCompleted {
		t.Fatalf("status got=%q want completed (err=%v)", j.Status, j.ErrorMessage)
	}
	if j.ProcessedDomains != 4 {
		t.Fatalf("processed got=%d want=4", j.ProcessedDomains)
	}
	if j.MaliciousCount != 1 || j.SuspiciousCount != 1 || j.BenignCount != 2 {
		t.Fatalf("counters got=(%d,%d,%d)", j.MaliciousCount, j.SuspiciousCount, j.BenignCount)
	}
	if j.CompletedAt == nil {
		t.Fatalf("completed_at not set")
	}
}

func TestSubmitBatch_Rejections(t *testing.T) {
	t.Parallel()

	svc := newTestSvc(newMemRepo(), &scriptDetector{}, Config{MaxBatch: 2})

	_, err := svc.SubmitBatch(context.Background(), "u", domain.BatchInput{})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("empty batch error got=%v", err)
	}

	_, err = svc.SubmitBatch(context.Background(), "u", domain.BatchInput{
		Domains: []string{"a.com", "b.com", "c.com"},
	})
	if !perr.IsCode(err, perr.ErrorCodeBatchTooLarge) {
		t.Fatalf("oversize batch error got=%v", err)
	}
}

func TestRunJob_CheckpointCadence(t *testing.T) {
	t.Parallel()

	mem := newMemRepo()
	svc := newTestSvc(mem, &scriptDetector{}, Config{CheckpointEvery: 10})

	doms := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		doms = append(doms, "d"+string(rune('a'+i/26))+string(rune('a'+i%26))+".org")
	}
	acc, err := svc.SubmitBatch(context.Background(), "user-1", domain.BatchInput{Domains: doms})
	if err != nil {
		t.Fatalf("SubmitBatch: %v", err)
	}
	mem.waitTerminal(t, acc.JobID)

	mem.mu.Lock()
	cps := append([]int(nil), mem.checkpoints...)
	mem.mu.Unlock()
	if len(cps) != 2 || cps[0] != 10 || cps[1] != 20 {
		t.Fatalf("checkpoints got=%v want=[10 20]", cps)
	}
}

func TestRunJob_RowFailureIsIsolated(t *testing.T) {
	t.Parallel()

	mem := newMemRepo()
	mem.failInsert["broken.org"] = true
	svc := newTestSvc(mem, &scriptDetector{}, Config{})

	acc, err := svc.SubmitBatch(context.Background(), "user-1", domain.BatchInput{
		Domains: []string{"a.org", "broken.org", "b.org"},
	})
	if err != nil {
		t.Fatalf("SubmitBatch: %v", err)
	}
	j := mem.waitTerminal(t, acc.JobID)

	if j.Status != domain.JobCompleted {
		t.Fatalf("one bad row must not fail the batch, status=%q", j.Status)
	}
	mem.mu.Lock()
	persisted := len(mem.scans)
	mem.mu.Unlock()
	if persisted != 2 {
		t.Fatalf("persisted got=%d want=2", persisted)
	}
}

func TestRunJob_UnknownVerdictPersistedNotCounted(t *testing.T) {
	t.Parallel()

	mem := newMemRepo()
	det := &scriptDetector{verdicts: map[string]string{"weird.org": "quarantine"}}
	svc := newTestSvc(mem, det, Config{})

	acc, err := svc.SubmitBatch(context.Background(), "user-1", domain.BatchInput{
		Domains: []string{"weird.org", "fine.org"},
	})
	if err != nil {
		t.Fatalf("SubmitBatch: %v", err)
	}
	j := mem.waitTerminal(t, acc.JobID)

	if j.MaliciousCount+j.SuspiciousCount != 0 || j.BenignCount != 1 {
		t.Fatalf("counters got=(%d,%d,%d)", j.MaliciousCount, j.SuspiciousCount, j.BenignCount)
	}
	mem.mu.Lock()
	persisted := len(mem.scans)
	mem.mu.Unlock()
	if persisted != 2 {
		t.Fatalf("unknown verdict row must still persist, got %d rows", persisted)
	}
}

func TestRunJob_BulkPanicFallsBackPerDomain(t *testing.T) {
	t.Parallel()

	mem := newMemRepo()
	det := &scriptDetector{panicMany: true, panicOn: map[string]bool{"boom.org": true}}
	svc := newTestSvc(mem, det, Config{})

	acc, err := svc.SubmitBatch(context.Background(), "user-1", domain.BatchInput{
		Domains: []string{"a.org", "boom.org", "b.org"},
	})
	if err != nil {
		t.Fatalf("SubmitBatch: %v", err)
	}
	j := mem.waitTerminal(t, acc.JobID)

	if j.Status != domain.JobCompleted {
		t.Fatalf("status got=%q want completed", j.Status)
	}
	// the panicking domain gets the fixed fallback outcome
	view, _, err := svc.JobResults(context.Background(), "user-1", acc.JobID, domain.ResultsQuery{Page: 1, PageSize: 50})
	if err != nil {
		t.Fatalf("JobResults: %v", err)
	}
	var sawFallback bool
	for _, s := range view {
		if s.Domain == "boom.org" {
			sawFallback = s.Verdict == classifier.VerdictSuspicious && s.Method == classifier.MethodDefault
		}
	}
	if !sawFallback {
		t.Fatalf("fallback outcome missing for panicking domain: %+v", view)
	}
	if j.SuspiciousCount != 1 || j.BenignCount != 2 {
		t.Fatalf("counters got=(%d,%d,%d)", j.MaliciousCount, j.SuspiciousCount, j.BenignCount)
	}
}

func TestRunJob_FinalizeErrorMarksJobFailed(t *testing.T) {
	t.Parallel()

	mem := newMemRepo()
	mem.failComplete = true
	svc := newTestSvc(mem, &scriptDetector{}, Config{})

	acc, err := svc.SubmitBatch(context.Background(), "user-1", domain.BatchInput{
		Domains: []string{"a.org", "b.org"},
	})
	if err != nil {
		t.Fatalf("SubmitBatch: %v", err)
	}
	j := mem.waitTerminal(t, acc.JobID)

	if j.Status != domain.JobFailed {
		t.Fatalf("status got=%q want failed", j.Status)
	}
	if j.ErrorMessage == nil || *j.ErrorMessage == "" {
		t.Fatalf("failed job must carry an error message")
	}
	if j.CompletedAt == nil {
		t.Fatalf("failed job must carry completed_at")
	}
	// rows classified before the finalize error stay persisted
	mem.mu.Lock()
	persisted := len(mem.scans)
	mem.mu.Unlock()
	if persisted != 2 {
		t.Fatalf("persisted got=%d want=2", persisted)
	}
}

func TestRunJob_ProcessingErrorMarksJobFailed(t *testing.T) {
	t.Parallel()

	mem := newMemRepo()
	mem.failProcessing = true
	svc := newTestSvc(mem, &scriptDetector{}, Config{})

	acc, err := svc.SubmitBatch(context.Background(), "user-1", domain.BatchInput{
		Domains: []string{"a.org"},
	})
	if err != nil {
		t.Fatalf("SubmitBatch: %v", err)
	}
	j := mem.waitTerminal(t, acc.JobID)

	if j.Status != domain.JobFailed {
		t.Fatalf("status got=%q want failed", j.Status)
	}
	if j.ErrorMessage == nil {
		t.Fatalf("failed job must carry an error message")
	}
	mem.mu.Lock()
	persisted := len(mem.scans)
	mem.mu.Unlock()
	if persisted != 0 {
		t.Fatalf("no rows should persist when the job never starts, got %d", persisted)
	}
}

func TestJobStatus_ProgressAndOwnership(t *testing.T) {
	t.Parallel()

	mem := newMemRepo()
	svc := newTestSvc(mem, &scriptDetector{}, Config{})

	acc, err := svc.SubmitBatch(context.Background(), "user-1", domain.BatchInput{
		Domains: []string{"a.org", "b.org"},
	})
	if err != nil {
		t.Fatalf("SubmitBatch: %v", err)
	}
	mem.waitTerminal(t, acc.JobID)

	view, err := svc.JobStatus(context.Background(), "user-1", acc.JobID)
	if err != nil {
		t.Fatalf("JobStatus: %v", err)
	}
	if view.ProgressPercentage != 100 {
		t.Fatalf("progress got=%v want=100", view.ProgressPercentage)
	}
	if view.ETASeconds != nil {
		t.Fatalf("eta should be nil, got %v", *view.ETASeconds)
	}

	// another user sees not found, never forbidden
	_, err = svc.JobStatus(context.Background(), "user-2", acc.JobID)
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("foreign owner error got=%v want not found", err)
	}

	_, err = svc.JobStatus(context.Background(), "user-1", "no-such-job")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing job error got=%v want not found", err)
	}
}

func TestJobResults_PaginationDefaults(t *testing.T) {
	t.Parallel()

	mem := newMemRepo()
	svc := newTestSvc(mem, &scriptDetector{}, Config{})

	doms := make([]string, 0, 60)
	for i := 0; i < 60; i++ {
		doms = append(doms, "p"+string(rune('a'+i/26))+string(rune('a'+i%26))+".org")
	}
	acc, err := svc.SubmitBatch(context.Background(), "user-1", domain.BatchInput{Domains: doms})
	if err != nil {
		t.Fatalf("SubmitBatch: %v", err)
	}
	mem.waitTerminal(t, acc.JobID)

	// zero values fall back to page 1 size 50
	items, total, err := svc.JobResults(context.Background(), "user-1", acc.JobID, domain.ResultsQuery{})
	if err != nil {
		t.Fatalf("JobResults: %v", err)
	}
	if total != 60 || len(items) != 50 {
		t.Fatalf("page 1 got len=%d total=%d", len(items), total)
	}

	items, _, err = svc.JobResults(context.Background(), "user-1", acc.JobID, domain.ResultsQuery{Page: 2, PageSize: 50})
	if err != nil {
		t.Fatalf("JobResults page 2: %v", err)
	}
	if len(items) != 10 {
		t.Fatalf("page 2 got len=%d want=10", len(items))
	}
}

func TestScanSingle_Persists(t *testing.T) {
	t.Parallel()

	mem := newMemRepo()
	det := &scriptDetector{verdicts: map[string]string{"bad.tk": classifier.VerdictMalicious}}
	svc := newTestSvc(mem, det, Config{})

	res, err := svc.ScanSingle(context.Background(), "user-1", domain.SingleInput{Domain: "bad.tk"})
	if err != nil {
		t.Fatalf("ScanSingle: %v", err)
	}
	if res.Verdict != classifier.VerdictMalicious || res.BatchJobID != nil {
		t.Fatalf("unexpected result: %+v", res)
	}
	mem.mu.Lock()
	defer mem.mu.Unlock()
	if len(mem.scans) != 1 {
		t.Fatalf("scan row not persisted")
	}
}
