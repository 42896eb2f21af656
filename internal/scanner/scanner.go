package scanner

import (
	"context"
	"fmt"

	"github.com/yoshi-675/sl-political-war-tracker/internal/domain"
)

// Source describes one configured news endpoint to scan.
type Source struct {
	ID  string
	URL string
}

// Scanner captures a single extraction strategy. The generic headline
// scanner covers most Sri Lankan news sites; per-site strategies can be
// registered alongside it.
type Scanner interface {
	Name() string
	Scan(ctx context.Context, src Source) ([]domain.Article, error)
}

// Registry keeps a mapping from scanner names to their implementations.
type Registry struct {
	scanners map[string]Scanner
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{scanners: map[string]Scanner{}}
}

// Register adds or replaces a scanner implementation.
func (r *Registry) Register(scanner Scanner) {
	if r.scanners == nil {
		r.scanners = map[string]Scanner{}
	}
	r.scanners[scanner.Name()] = scanner
}

// Resolve returns a scanner by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Scanner, error) {
	if scanner, ok := r.scanners[name]; ok {
		return scanner, nil
	}
	return nil, fmt.Errorf("scanner %s is not registered", name)
}
