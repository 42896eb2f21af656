package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/yoshi-675/sl-political-war-tracker/internal/analysis"
	"github.com/yoshi-675/sl-political-war-tracker/internal/config"
	"github.com/yoshi-675/sl-political-war-tracker/internal/domain"
	"github.com/yoshi-675/sl-political-war-tracker/internal/infrastructure/parser"
	"github.com/yoshi-675/sl-political-war-tracker/internal/infrastructure/scheduler"
	"github.com/yoshi-675/sl-political-war-tracker/internal/infrastructure/snapshot"
	"github.com/yoshi-675/sl-political-war-tracker/internal/infrastructure/telegram"
	"github.com/yoshi-675/sl-political-war-tracker/internal/logging"
	"github.com/yoshi-675/sl-political-war-tracker/internal/ports"
	"github.com/yoshi-675/sl-political-war-tracker/internal/report"
	"github.com/yoshi-675/sl-political-war-tracker/internal/scanner"
	"github.com/yoshi-675/sl-political-war-tracker/internal/usecase"
)

// Application wires configuration into the run pipeline and, when a
// scheduler interval is set, the watch-mode loop.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
	watcher  *usecase.Watcher
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	players := toDomainPlayers(cfg.Players)

	registry := scanner.NewRegistry()
	client := &http.Client{Timeout: cfg.Fetch.Timeout}
	registry.Register(parser.NewHeadlineScanner(client, cfg.Fetch.UserAgent))

	source := parser.NewConfigSource(registry, cfg.Sources, cfg.Fetch.Parallel,
		baseLogger.With("component", "source"))

	var notifier ports.Notifier
	if cfg.Notifications.Telegram.BotToken != "" && cfg.Notifications.Telegram.ChatID != "" {
		notifier = telegram.NewNotifier(cfg.Notifications.Telegram.BotToken, cfg.Notifications.Telegram.ChatID)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:     source,
		Snapshot:   snapshot.NewWriter(cfg.Output.Path),
		Notifier:   notifier,
		Players:    players,
		Detector:   analysis.NewDetector(players),
		Classifier: analysis.NewClassifier(cfg.Keywords.Positive, cfg.Keywords.Negative, cfg.Keywords.Crisis),
		Reporter:   report.NewGenerator(players, toReportRules(cfg.Predictions)),
		Logger:     baseLogger.With("component", "pipeline"),
	})

	app := &Application{cfg: cfg, pipeline: pipeline}
	if cfg.Scheduler.Interval > 0 {
		driver := scheduler.NewIntervalScheduler(cfg.Scheduler.Interval)
		app.watcher = usecase.NewWatcher(driver, pipeline, baseLogger.With("component", "watcher"))
	}
	return app
}

// Run executes a single cycle, or blocks re-running until the context is
// cancelled when watch mode is enabled.
func (a *Application) Run(ctx context.Context) error {
	if a.watcher != nil {
		if err := a.watcher.Start(ctx); err != nil {
			return err
		}
		<-ctx.Done()
		return a.watcher.Stop(context.Background())
	}

	return a.pipeline.Run(ctx, time.Now())
}

func toDomainPlayers(cfg []config.PlayerConfig) []domain.Player {
	players := make([]domain.Player, 0, len(cfg))
	for _, p := range cfg {
		players = append(players, domain.Player{
			ID:    p.ID,
			Names: p.Names,
			Party: p.Party,
			Role:  p.Role,
		})
	}
	return players
}

func toReportRules(cfg config.PredictionConfig) report.Rules {
	rules := report.Rules{
		Coalition: report.CoalitionRule{
			Members:        cfg.Coalition.Members,
			ShareThreshold: cfg.Coalition.ShareThreshold,
			Then: domain.CoalitionPrediction{
				FormationProbability: cfg.Coalition.Then.FormationProbability,
				Timeline:             cfg.Coalition.Then.Timeline,
				Leader:               cfg.Coalition.Then.Leader,
			},
			Else: domain.CoalitionPrediction{
				FormationProbability: cfg.Coalition.Else.FormationProbability,
				Timeline:             cfg.Coalition.Else.Timeline,
				Leader:               cfg.Coalition.Else.Leader,
			},
		},
	}

	for _, move := range cfg.Moves {
		rules.Moves = append(rules.Moves, report.MoveRule{
			PlayerID:  move.Player,
			WhenTrend: move.WhenTrend,
			Then: domain.PlayerPrediction{
				Move:       move.Then.Move,
				Confidence: move.Then.Confidence,
				Timing:     move.Then.Timing,
			},
			Else: domain.PlayerPrediction{
				Move:       move.Else.Move,
				Confidence: move.Else.Confidence,
				Timing:     move.Else.Timing,
			},
		})
	}

	return rules
}
