// Package service exposes classifier introspection and reload
package service

import (
	"context"
	"time"

	"dnsguard/internal/core/classifier"
	"dnsguard/internal/platform/logger"
	"dnsguard/internal/services/models/domain"
)

// Service defines the service contract for model introspection
type Service interface{ domain.ServicePort }

// ReloadFunc rebuilds the safelist snapshot and reports its size
type ReloadFunc func(ctx context.Context) (int, error)

// Svc implements the Service interface
type Svc struct {
	cls    *classifier.Classifier
	reload ReloadFunc
	log    *logger.Logger
}

// New creates a new models service
func New(cls *classifier.Classifier, reload ReloadFunc) *Svc {
	if cls == nil {
		panic("models.Service requires a non nil Classifier")
	}
	if reload == nil {
		panic("models.Service requires a non nil reload hook")
	}
	return &Svc{cls: cls, reload: reload, log: logger.Named("models")}
}

// Info reports the serving model and its safelist snapshot
func (s *Svc) Info(ctx context.Context) (domain.Info, error) {
	name, version := s.cls.ModelInfo()
	return domain.Info{
		ModelName:    name,
		ModelVersion: version,
		Degraded:     s.cls.Degraded(),
		SafelistSize: s.cls.SafelistSize(),
		FeatureCount: len(classifier.FeatureNames),
	}, nil
}

// Features lists the lexical feature names the model scores
func (s *Svc) Features(ctx context.Context) ([]string, error) {
	out := make([]string, len(classifier.FeatureNames))
	copy(out, classifier.FeatureNames)
	return out, nil
}

// Reload rebuilds the safelist snapshot from storage
func (s *Svc) Reload(ctx context.Context) (domain.ReloadReport, error) {
	n, err := s.reload(ctx)
	if err != nil {
		return domain.ReloadReport{}, err
	}
	s.log.Info().Int("safelist_size", n).Msg("safelist snapshot reloaded")
	return domain.ReloadReport{SafelistSize: n, ReloadedAt: time.Now().UTC()}, nil
}
