package parser

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/yoshi-675/sl-political-war-tracker/internal/config"
	"github.com/yoshi-675/sl-political-war-tracker/internal/domain"
	"github.com/yoshi-675/sl-political-war-tracker/internal/ports"
	"github.com/yoshi-675/sl-political-war-tracker/internal/scanner"
)

// ConfigSource implements ArticleSource over the configured news sources.
// A fetch or extract failure on one source is logged and degrades to zero
// articles from that source; the run continues.
type ConfigSource struct {
	registry *scanner.Registry
	sources  []config.SourceConfig
	parallel bool
	logger   *slog.Logger
}

var _ ports.ArticleSource = (*ConfigSource)(nil)

// NewConfigSource wires the scanner registry with config-defined sources.
func NewConfigSource(reg *scanner.Registry, sources []config.SourceConfig, parallel bool, log *slog.Logger) *ConfigSource {
	return &ConfigSource{
		registry: reg,
		sources:  sources,
		parallel: parallel,
		logger:   log,
	}
}

// FetchAll collects headlines from every configured source. Output order is
// always the configuration order, in both sequential and parallel modes.
func (s *ConfigSource) FetchAll(ctx context.Context) ([]domain.Article, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("scanner registry is not configured")
	}

	s.debug("fetch sources", "sources", len(s.sources), "parallel", s.parallel)

	slots := make([][]domain.Article, len(s.sources))
	if s.parallel {
		g, gctx := errgroup.WithContext(ctx)
		for i, src := range s.sources {
			i, src := i, src
			g.Go(func() error {
				slots[i] = s.fetchOne(gctx, src)
				return nil
			})
		}
		// fetchOne never returns an error; Wait only propagates ctx wiring.
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, src := range s.sources {
			slots[i] = s.fetchOne(ctx, src)
		}
	}

	var aggregated []domain.Article
	for _, slot := range slots {
		aggregated = append(aggregated, slot...)
	}

	s.debug("sources done", "total_articles", len(aggregated))
	return aggregated, nil
}

func (s *ConfigSource) fetchOne(ctx context.Context, src config.SourceConfig) []domain.Article {
	strategy, err := s.registry.Resolve(src.ScannerName())
	if err != nil {
		s.warn("source skipped", "source", src.ID, "error", err)
		return nil
	}

	articles, err := strategy.Scan(ctx, scanner.Source{ID: src.ID, URL: src.URL})
	if err != nil {
		s.warn("source failed", "source", src.ID, "error", err)
		return nil
	}

	s.debug("source produced articles", "source", src.ID, "count", len(articles))
	return articles
}

func (s *ConfigSource) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *ConfigSource) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
