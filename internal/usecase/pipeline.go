package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/yoshi-675/sl-political-war-tracker/internal/aggregate"
	"github.com/yoshi-675/sl-political-war-tracker/internal/analysis"
	"github.com/yoshi-675/sl-political-war-tracker/internal/domain"
	"github.com/yoshi-675/sl-political-war-tracker/internal/ports"
	"github.com/yoshi-675/sl-political-war-tracker/internal/report"
)

// Snapshot keeps the first sampleSize articles of the run.
const sampleSize = 15

// PipelineDeps wires all driven adapters into the run orchestration.
type PipelineDeps struct {
	Source     ports.ArticleSource
	Snapshot   ports.SnapshotWriter
	Notifier   ports.Notifier
	Players    []domain.Player
	Detector   *analysis.Detector
	Classifier *analysis.Classifier
	Reporter   *report.Generator
	Logger     *slog.Logger
	Out        io.Writer
}

// Pipeline implements the scrape-analyze-report workflow for one run.
type Pipeline struct {
	source     ports.ArticleSource
	snapshot   ports.SnapshotWriter
	notifier   ports.Notifier
	players    []domain.Player
	detector   *analysis.Detector
	classifier *analysis.Classifier
	reporter   *report.Generator
	logger     *slog.Logger
	out        io.Writer
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	return &Pipeline{
		source:     deps.Source,
		snapshot:   deps.Snapshot,
		notifier:   deps.Notifier,
		players:    deps.Players,
		detector:   deps.Detector,
		classifier: deps.Classifier,
		reporter:   deps.Reporter,
		logger:     deps.Logger,
		out:        out,
	}
}

// Run executes one full cycle: fetch every source, score every headline,
// fold the results into per-player stats, derive the war report, persist
// the snapshot, and emit the console summary. Source failures have already
// degraded to zero articles by the time they reach this loop; the only
// error paths left are wiring and snapshot persistence.
func (p *Pipeline) Run(ctx context.Context, now time.Time) error {
	runID := uuid.NewString()

	articles, err := p.source.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch sources: %w", err)
	}
	p.info("articles collected", "run_id", runID, "count", len(articles))

	tally := aggregate.NewTally(p.players)
	for _, article := range articles {
		mentions := p.detector.Detect(article.Title)
		sentiment := p.classifier.Classify(article.Title)
		tally.Add(article, sentiment, mentions)
	}

	metrics := tally.Finalize(now)
	warReport := p.reporter.Generate(metrics)

	snap := domain.Snapshot{
		RawMetrics:     metrics,
		WarReport:      warReport,
		ArticlesSample: sample(articles, sampleSize),
		GeneratedAt:    now,
	}
	if err := p.snapshot.Write(ctx, snap); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	p.info("snapshot written", "run_id", runID,
		"total_mentions", metrics.TotalMentions,
		"war_intensity", metrics.WarIntensity,
		"dominant", metrics.DominantPlayer)

	summary := BuildSummary(metrics, warReport, p.players)
	fmt.Fprintln(p.out, summary)

	if p.notifier != nil {
		if err := p.notifier.PublishSummary(ctx, summary); err != nil {
			p.warn("publish summary", "run_id", runID, "error", err)
		}
	}

	return nil
}

func sample(articles []domain.Article, n int) []domain.Article {
	if len(articles) < n {
		n = len(articles)
	}
	out := make([]domain.Article, n)
	copy(out, articles[:n])
	return out
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
