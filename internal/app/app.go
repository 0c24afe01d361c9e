package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"freight-rate-watch/internal/alerting"
	"freight-rate-watch/internal/config"
	"freight-rate-watch/internal/extract"
	"freight-rate-watch/internal/fetcher"
	"freight-rate-watch/internal/scheduler"
	"freight-rate-watch/internal/server"
	"freight-rate-watch/internal/service"
	"freight-rate-watch/internal/storage"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{Config: cfg, Logger: logger.With().Str("component", "app").Logger()}
}

func (a *App) newExtractor() *extract.Extractor {
	parser := extract.NewParser(a.Config.Rates.MinRate, a.Config.Rates.MaxRate)
	return extract.NewExtractor(parser, a.Logger)
}

func (a *App) newBulletinFetcher() fetcher.BulletinFetcher {
	return fetcher.NewBulletin(fetcher.BulletinOptions{
		URL:       a.Config.Source.BulletinURL,
		UserAgent: a.Config.Source.UserAgent,
		Timeout:   a.Config.Source.RequestTimeout,
	}, a.Logger)
}

func (a *App) newBunkerFetcher() fetcher.BunkerFetcher {
	if a.Config.Source.BunkerURL == "" {
		return nil
	}
	return fetcher.NewBunker(fetcher.BunkerOptions{
		URL:       a.Config.Source.BunkerURL,
		UserAgent: a.Config.Source.UserAgent,
		Timeout:   a.Config.Source.RequestTimeout,
	}, a.Logger)
}

func (a *App) newNotifier() alerting.Notifier {
	if !a.Config.Alerting.Enabled || !a.Config.Alerting.Telegram.Enabled {
		return nil
	}
	cfg := a.Config.Alerting.Telegram
	return alerting.NewTelegramNotifier(cfg.BotToken, cfg.ChatID, cfg.APIBase, 10*time.Second, a.Logger)
}

func (a *App) openStore(ctx context.Context) (*storage.Store, func(), error) {
	if a.Config.Database.DSN == "" {
		return nil, nil, nil
	}
	pool, err := storage.NewPool(ctx, a.Config.Database)
	if err != nil {
		return nil, nil, err
	}
	store := storage.NewStore(pool)
	return store, store.Close, nil
}

func (a *App) newService(store *storage.Store, bulletin fetcher.BulletinFetcher, notifier alerting.Notifier) *service.Service {
	var rateStore storage.RateStore
	var bunkerStore storage.BunkerStore
	if store != nil {
		rateStore = store
		bunkerStore = store
	}
	return service.New(a.Config, bulletin, a.newBunkerFetcher(), a.newExtractor(), rateStore, bunkerStore, notifier, a.Logger)
}

func (a *App) newServer(svc server.RatesService) *server.Server {
	return server.New(server.Options{
		ListenAddr:        a.Config.Server.ListenAddr,
		CronSecret:        a.Config.Server.CronSecret,
		TrustedCronHeader: a.Config.Server.TrustedCronHeader,
		CORSOrigins:       a.Config.Server.CORSOrigins,
	}, svc, a.Logger)
}

// Run starts the deployable: the daily extraction scheduler and the HTTP
// API together, until interrupted.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if store == nil {
		a.Logger.Warn().Msg("database.dsn not configured; persistence disabled")
	}
	if closeStore != nil {
		defer closeStore()
	}

	svc := a.newService(store, a.newBulletinFetcher(), a.newNotifier())

	hour, minute := a.Config.RunAtClock()
	sched := scheduler.New(scheduler.Options{
		Hour:         hour,
		Minute:       minute,
		StartupDelay: a.Config.Scheduler.StartupDelay,
	}, a.Logger)

	srv := a.newServer(svc)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sched.Run(gctx, func(runCtx context.Context, day time.Time) error {
			_, runErr := svc.RunExtraction(runCtx, day)
			return runErr
		})
	})
	g.Go(func() error {
		return srv.ListenAndServe(gctx)
	})

	a.Logger.Info().Msg("freightwatch service started")
	err = g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		a.Logger.Error().Err(err).Msg("service terminated with error")
		return err
	}
	a.Logger.Info().Msg("freightwatch service stopped")
	return nil
}

// Serve runs the HTTP API only, for deployments where an external
// scheduler owns the extraction trigger.
func (a *App) Serve(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if closeStore != nil {
		defer closeStore()
	}

	svc := a.newService(store, a.newBulletinFetcher(), a.newNotifier())
	return a.newServer(svc).ListenAndServe(ctx)
}

// ExtractOptions configure a one-shot extraction run.
type ExtractOptions struct {
	Date   string
	File   string
	DryRun bool
}

// ShowOptions configure the show command.
type ShowOptions struct {
	Limit int
}

// ExportOptions hold parameters for exporting a route's rate history.
type ExportOptions struct {
	Vessel    string
	Origin    string
	Dest      string
	Days      int
	CSVPath   string
	PNGPath   string
	MaxPoints int
}
