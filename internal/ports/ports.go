package ports

import (
	"context"
	"time"

	"github.com/yoshi-675/sl-political-war-tracker/internal/domain"
)

// ArticleSource pulls headlines from every configured news source. A
// failing source degrades to zero articles; only wiring errors surface.
type ArticleSource interface {
	FetchAll(ctx context.Context) ([]domain.Article, error)
}

// SnapshotWriter persists the combined run output as one structured document.
type SnapshotWriter interface {
	Write(ctx context.Context, snap domain.Snapshot) error
}

// Notifier delivers the human-readable run summary to an outbound channel.
type Notifier interface {
	PublishSummary(ctx context.Context, summary string) error
}

// Scheduler triggers repeated pipeline executions in watch mode.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
