package domain

import "context"

// ServicePort is the model introspection surface consumed by HTTP
type ServicePort interface {
	Info(ctx context.Context) (Info, error)
	Features(ctx context.Context) ([]string, error)
	Reload(ctx context.Context) (ReloadReport, error)
}
