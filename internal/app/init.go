package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	server "github.com/admin/jyotish/vedic-client/internal/adapters/primary/http"
	alerterController "github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/controllers/alerter"
	chartController "github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/controllers/chart"
	chatController "github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/controllers/chat"
	healthcheckController "github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/controllers/healthcheck"
	horoscopeController "github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/controllers/horoscope"
	languageController "github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/controllers/language"
	matchingController "github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/controllers/matching"
	placesController "github.com/admin/jyotish/vedic-client/internal/adapters/primary/http/controllers/places"
	alerterAdapter "github.com/admin/jyotish/vedic-client/internal/adapters/secondary/alerter"
	astroApiAdapter "github.com/admin/jyotish/vedic-client/internal/adapters/secondary/astroApi"
	kafkaAdapter "github.com/admin/jyotish/vedic-client/internal/adapters/secondary/kafka"
	"github.com/admin/jyotish/vedic-client/internal/adapters/secondary/storage/inmemory"
	"github.com/admin/jyotish/vedic-client/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/admin/jyotish/vedic-client/internal/adapters/secondary/storage/redis"
	"github.com/admin/jyotish/vedic-client/internal/adapters/secondary/storage/s3"
	"github.com/admin/jyotish/vedic-client/internal/pkg/locale"
	"github.com/admin/jyotish/vedic-client/internal/pkg/metrics"
	"github.com/admin/jyotish/vedic-client/internal/pkg/validator"
	"github.com/admin/jyotish/vedic-client/internal/ports/cache"
	"github.com/admin/jyotish/vedic-client/internal/ports/kafka"
	"github.com/admin/jyotish/vedic-client/internal/ports/repository"
	"github.com/admin/jyotish/vedic-client/internal/ports/service"
	pdfArchiveRepo "github.com/admin/jyotish/vedic-client/internal/repository/pdfArchive"
	transcriptRepo "github.com/admin/jyotish/vedic-client/internal/repository/transcript"
	alerterService "github.com/admin/jyotish/vedic-client/internal/services/alerter"
	astroApiService "github.com/admin/jyotish/vedic-client/internal/services/astroApi"
	jobScheduler "github.com/admin/jyotish/vedic-client/internal/services/jobs"
	astroUsecase "github.com/admin/jyotish/vedic-client/internal/usecases/astro"
	"github.com/admin/jyotish/vedic-client/internal/usecases/conversation"
	"github.com/admin/jyotish/vedic-client/internal/usecases/places"
)

type Dependencies struct {
	DB            *pg.DB
	HTTPServer    *http.Server
	Cache         cache.Cache
	KafkaProducer *kafkaAdapter.Producer
	JobScheduler  *jobScheduler.Scheduler
}

// Core общие зависимости HTTP-сервиса и CLI
type Core struct {
	Metrics   *metrics.Metrics
	AstroAPI  service.IAstroAPIService
	Cache     cache.Cache
	Validator *validator.CustomValidator
	Switcher  *locale.Switcher
	Astro     *astroUsecase.Service
	Catalog   *places.Catalog
	Sessions  *conversation.Registry
	Alerter   service.IAlerterService

	db       *pg.DB
	producer *kafkaAdapter.Producer
}

// initDependencies инициализирует все зависимости HTTP-сервиса
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	core, err := a.InitCore(ctx)
	if err != nil {
		return nil, err
	}

	scheduler, err := a.initJobs(core)
	if err != nil {
		return nil, fmt.Errorf("failed to init jobs: %w", err)
	}

	return &Dependencies{
		DB:            core.db,
		HTTPServer:    a.initHTTP(core),
		Cache:         core.Cache,
		KafkaProducer: core.producer,
		JobScheduler:  scheduler,
	}, nil
}

// InitCore поднимает адаптеры и use cases; необязательные адаптеры включаются конфигурацией
func (a *App) InitCore(ctx context.Context) (*Core, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.MustNewMetrics(reg)

	resolver, err := locale.NewResolver()
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}

	core := &Core{
		Metrics:   m,
		AstroAPI:  astroApiService.New(astroApiAdapter.NewClient(a.Cfg.AstroAPI, a.Log, m)),
		Validator: validator.NewValidator(),
		Switcher:  locale.NewSwitcher(a.Cfg.InitialLanguage(), resolver),
	}

	core.Cache, err = a.initCache()
	if err != nil {
		return nil, fmt.Errorf("failed to init cache: %w", err)
	}

	var (
		transcripts repository.ITranscriptRepo
		pdfArchive  repository.IPDFArchiveRepo
	)
	if a.Cfg.Postgres.Enabled() {
		core.db, err = a.initPostgres(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to init postgres: %w", err)
		}
		transcripts = transcriptRepo.New(core.db, a.Log)
		pdfArchive = pdfArchiveRepo.New(core.db, a.Log)
	}

	var events kafka.IEventPublisher
	if a.Cfg.Kafka.Enabled() {
		core.producer, err = kafkaAdapter.NewProducer(a.Cfg.Kafka, a.Log)
		if err != nil {
			return nil, fmt.Errorf("failed to init kafka producer: %w", err)
		}
		events = core.producer
	}

	if a.Cfg.Alerter.Enabled() {
		core.Alerter = alerterService.New(alerterAdapter.NewClient(a.Cfg.Alerter, a.Log), a.Log)
	}

	core.Astro = astroUsecase.New(core.AstroAPI, core.Validator, inmemory.NewSlotTracker(), a.Log)
	core.Astro.Cache = core.Cache
	core.Astro.Events = events
	core.Astro.PDFArchive = pdfArchive
	core.Astro.Metrics = m
	core.Astro.ChartTTL = a.Cfg.Cache.ChartTTL
	core.Astro.HoroscopeTTL = a.Cfg.Cache.HoroscopeTTL
	if a.Cfg.S3.Enabled() {
		mc, err := a.Cfg.S3.NewClient()
		if err != nil {
			return nil, fmt.Errorf("failed to init s3: %w", err)
		}
		core.Astro.S3Client = s3.NewClient(mc, a.Cfg.S3.Bucket, a.Log)
		core.Astro.PDFKeyPrefix = a.Cfg.S3.KeyPrefix
		core.Astro.PresignTTL = a.Cfg.S3.PresignExpiry()
		a.Log.Info("s3 archive enabled", "bucket", a.Cfg.S3.Bucket)
	}

	core.Catalog = places.NewCatalog(core.AstroAPI, core.Cache, a.Cfg.Cache.CitiesTTL, a.Log)
	core.Sessions = conversation.NewRegistry(core.AstroAPI, transcripts, events, a.Log,
		conversation.WithSessionLimit(a.Cfg.Cache.ChatSessions, a.Cfg.Cache.ChatSessionTTL))

	return core, nil
}

// Close освобождает соединения, открытые InitCore
func (c *Core) Close() []error {
	var errs []error
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close cache: %w", err))
		}
	}
	if c.producer != nil {
		if err := c.producer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close kafka producer: %w", err))
		}
	}
	return errs
}

// initCache выбирает Redis, если он настроен, иначе LRU в памяти процесса
func (a *App) initCache() (cache.Cache, error) {
	if a.Cfg.Redis.Enabled() {
		rdb, err := a.Cfg.Redis.NewConnection()
		if err != nil {
			return nil, err
		}
		a.Log.Info("redis cache connected", "host", a.Cfg.Redis.Host)
		return redisAdapter.NewClient(rdb, a.Cfg.Redis.KeyPrefix), nil
	}

	a.Log.Info("redis not configured, using in-memory cache", "size", a.Cfg.Cache.LRUSize)
	return inmemory.NewLRUCache(a.Cfg.Cache.LRUSize)
}

func (a *App) initPostgres(ctx context.Context) (*pg.DB, error) {
	db, err := a.Cfg.Postgres.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	a.Log.Info("postgres connected successfully")

	if err := pg.RunMigrations(ctx, db, a.Log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return pg.NewDB(db), nil
}

// initJobs регистрирует фоновые задачи; выключенный планировщик возвращается как nil
func (a *App) initJobs(core *Core) (*jobScheduler.Scheduler, error) {
	if !a.Cfg.Jobs.Enabled {
		a.Log.Info("job scheduler disabled")
		return nil, nil
	}

	loc, err := a.Cfg.Jobs.Location()
	if err != nil {
		return nil, err
	}

	scheduler := jobScheduler.NewScheduler(a.Log, core.Alerter)
	scheduler.Register(jobScheduler.NewCatalogRefresher(core.Catalog, a.Cfg.Jobs.CatalogRefreshInterval, a.Log))
	scheduler.Register(jobScheduler.NewHoroscopePrefetcher(core.Astro, a.Cfg.Jobs.HoroscopePrefetchHour, loc, a.Log))
	return scheduler, nil
}

func (a *App) initHTTP(core *Core) *http.Server {
	healthCheck := healthcheckController.New(a.Log)
	if core.db != nil {
		healthCheck.AddCheck("postgres", core.db)
	}
	if pinger, ok := core.Cache.(healthcheckController.Pinger); ok {
		healthCheck.AddCheck("cache", pinger)
	}

	return server.NewHTTPServer(a.Cfg.Server, a.Log, core.Metrics, core.Switcher,
		healthCheck,
		languageController.New(core.Switcher),
		placesController.New(core.Catalog, a.Log),
		chartController.New(core.Astro, core.Validator, a.Log),
		matchingController.New(core.Astro, core.Validator, a.Log),
		horoscopeController.New(core.Astro, a.Log),
		chatController.New(core.Sessions, a.Log),
		alerterController.New(core.Alerter, a.Log),
	)
}
