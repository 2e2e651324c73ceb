package main

// @title Folio API
// @version 1.0
// @description Portfolio backend: content management, contact messages, resume/CV documents and an AI chatbot.

// @contact.name Tunji Paul
// @contact.url https://github.com/folio/folio

// @license.name MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/folio/folio/config"
	"github.com/folio/folio/pkg/api"
	"github.com/folio/folio/pkg/api/events"
	"github.com/folio/folio/pkg/api/handlers"
	"github.com/folio/folio/pkg/auth"
	"github.com/folio/folio/pkg/chatbot"
	"github.com/folio/folio/pkg/documents"
	"github.com/folio/folio/pkg/llm"
	"github.com/folio/folio/pkg/logger"
	"github.com/folio/folio/pkg/metrics"
	"github.com/folio/folio/pkg/notify"
	"github.com/folio/folio/pkg/portfolio"
	"github.com/folio/folio/pkg/storage"
	"github.com/folio/folio/pkg/storage/badger"
	"github.com/folio/folio/pkg/storage/memory"
	"github.com/folio/folio/pkg/storage/redis"
	"github.com/folio/folio/pkg/storage/sqlite"
	"github.com/folio/folio/pkg/telemetry/tracing"
	"github.com/folio/folio/pkg/version"
)

var (
	configPath  = flag.String("config", "", "Path to configuration file")
	versionFlag = flag.Bool("version", false, "Print version information")
	helpFlag    = flag.Bool("help", false, "Print help information")

	// CLI overrides
	appName     = flag.String("app-name", "", "Override app name")
	serverPort  = flag.Int("port", 0, "Override server port")
	logLevel    = flag.String("log-level", "", "Override log level")
	storageType = flag.String("storage", "", "Override storage backend (memory, badger, redis, sqlite)")
	debugMode   = flag.Bool("debug", false, "Enable debug mode")
)

func main() {
	flag.Parse()

	if *helpFlag {
		printHelp()
		os.Exit(0)
	}

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	overrides := buildOverrides()

	cfg, err := config.Load(*configPath, overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration:\n%s\n", err)
		os.Exit(1)
	}

	logCfg := &logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}
	if cfg.App.Debug || *debugMode {
		logCfg.Level = logger.DebugLevel
	}
	log := logger.New(logCfg)
	logger.SetGlobal(log)

	log.Info("Starting Folio",
		"version", version.Version,
		"buildTime", version.BuildTime,
		"gitCommit", version.GitCommit,
		"app", cfg.App.Name,
		"environment", cfg.App.Environment,
	)
	log.Debug("Configuration loaded", "config", cfg.String())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing, cfg.App.Name,
		tracing.WithServiceVersion(version.Version),
		tracing.WithEnvironment(cfg.App.Environment),
		tracing.WithLogger(log),
	)
	if err != nil {
		log.Error("Failed to initialize tracing", "error", err)
		os.Exit(1)
	}

	metricsManager := metrics.NewManager(metricsConfig(cfg))
	if metricsManager.Enabled() {
		go func() {
			log.Info("Starting metrics server", "port", cfg.Metrics.Port, "path", cfg.Metrics.Path)
			if err := metricsManager.StartServer(ctx, cfg.Metrics.Port, cfg.Metrics.Path); err != nil {
				log.Error("Metrics server error", "error", err)
			}
		}()
	}

	a, err := newApp(ctx, cfg, log, metricsManager)
	if err != nil {
		log.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	if *configPath != "" {
		watcher, err := config.NewWatcher(*configPath, config.NewLoader(), config.WithLogger(log))
		if err != nil {
			log.Warn("Config hot reload disabled", "error", err)
		} else {
			watcher.OnChange(config.LogLevelReloader(log))
			go func() {
				if err := watcher.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
					log.Warn("Config watcher stopped", "error", err)
				}
			}()
			defer func() { _ = watcher.Stop() }()
		}
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", a.server.Addr())
		if err := a.server.Start(); err != nil {
			serverErrChan <- err
		}
	}()

	log.Info("Folio is running",
		"http_port", cfg.Server.Port,
		"metrics_port", cfg.Metrics.Port,
		"storage", cfg.Storage.Type,
		"llm", a.provider.Name(),
	)
	log.Info("Press Ctrl+C to stop")

	select {
	case sig := <-sigChan:
		log.Info("Received shutdown signal", "signal", sig)
	case err := <-serverErrChan:
		log.Error("HTTP server error", "error", err)
	case <-ctx.Done():
		log.Info("Context cancelled")
	}

	shutdownTimeout := cfg.Server.HTTP.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	a.shutdown(shutdownCtx)

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Error shutting down tracing", "error", err)
	}

	log.Info("Folio stopped gracefully")
}

// app holds the wired components so shutdown can release them in order.
type app struct {
	log      logger.Logger
	store    storage.Store
	bus      *events.Broadcaster
	content  *portfolio.Service
	provider llm.Provider
	bot      *chatbot.Orchestrator
	server   *api.HTTPServer
}

func newApp(ctx context.Context, cfg *config.Config, log logger.Logger, m *metrics.Manager) (*app, error) {
	raw, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	store := storage.Instrument(raw, m)

	fail := func(err error) (*app, error) {
		_ = store.Close()
		return nil, err
	}

	bus := events.NewBroadcaster()

	sender, err := newSender(cfg)
	if err != nil {
		return fail(err)
	}
	mailer := notify.NewMailer(sender, cfg.Notify.From, cfg.Notify.AdminEmail, cfg.Owner.Name)

	content := portfolio.NewService(store,
		portfolio.WithLogger(log),
		portfolio.WithEvents(bus),
		portfolio.WithNotifier(mailer),
		portfolio.WithNotifyTimeout(cfg.Notify.Timeout),
	)

	docs, err := documents.New(store, documents.Config{
		Dir:       cfg.Documents.Dir,
		MaxSize:   cfg.Documents.MaxSize,
		OwnerName: cfg.Owner.Name,
	}, documents.WithLogger(log), documents.WithEvents(bus))
	if err != nil {
		return fail(fmt.Errorf("documents: %w", err))
	}

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, nil)
	authSvc := auth.NewService(store, tokens, log)
	if cfg.Auth.AdminEmail != "" && cfg.Auth.AdminPassword != "" {
		if err := authSvc.SeedAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
			return fail(fmt.Errorf("seed admin: %w", err))
		}
	}

	provider, err := newProvider(ctx, cfg)
	if err != nil {
		return fail(err)
	}

	bot := chatbot.New(provider, content.ChatSource(), chatbot.Profile{
		Name:      cfg.Owner.Name,
		Email:     cfg.Owner.Email,
		GitHub:    cfg.Owner.GitHub,
		Portfolio: cfg.Owner.Portfolio,
		LinkedIn:  cfg.Owner.LinkedIn,
	},
		chatbot.WithConfig(chatConfig(cfg)),
		chatbot.WithLogger(log),
		chatbot.WithRecorder(m),
	)
	state := bot.State()
	m.RegisterChatState(state.Cache.Len, state.Memory.Len)

	h := &api.Handlers{
		Health: handlers.NewHealthHandler(store, map[string]handlers.StatusReporter{
			"chatbot": func() any { return bot.CacheStats() },
			"events":  func() any { return map[string]any{"subscribers": bus.Subscribers(), "dropped": bus.Dropped()} },
			"llm":     func() any { return map[string]string{"provider": provider.Name()} },
		}),
		Auth:      handlers.NewAuthHandler(authSvc, auth.NewLoginThrottle(cfg.Auth.LoginRate, cfg.Auth.LoginBurst), log),
		Chat:      handlers.NewChatHandler(bot, log),
		Content:   handlers.NewContentHandler(content, log),
		Messages:  handlers.NewMessageHandler(content, log),
		Documents: handlers.NewDocumentHandler(docs, cfg.Documents.MaxSize, log),
		Verifier:  tokens,
	}
	if m.Enabled() {
		h.Metrics = m
	}
	if cfg.WebSocket.Enabled {
		h.Events = handlers.NewWebSocketHandler(bus, log, handlers.WebSocketConfig{
			AllowedOrigins: cfg.Server.CORS.AllowedOrigins,
			MaxConnections: cfg.WebSocket.MaxConnections,
			PingInterval:   cfg.WebSocket.PingInterval,
			OnConnections:  m.SetWebSocketConnections,
		})
	}

	return &app{
		log:      log,
		store:    store,
		bus:      bus,
		content:  content,
		provider: provider,
		bot:      bot,
		server:   api.NewHTTPServer(cfg, log, h),
	}, nil
}

// shutdown stops accepting requests, drains background notifications and
// closes the event feed and the store.
func (a *app) shutdown(ctx context.Context) {
	a.log.Info("Shutting down HTTP server")
	if err := a.server.Shutdown(ctx); err != nil {
		a.log.Error("Error shutting down HTTP server", "error", err)
	}

	a.content.Wait()
	a.bus.Close()

	if err := a.store.Close(); err != nil {
		a.log.Error("Error closing storage", "error", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config, log logger.Logger) (storage.Store, error) {
	switch cfg.Storage.Type {
	case "badger":
		badgerCfg := &badger.Config{
			Path:             cfg.Storage.Badger.Path,
			SyncWrites:       cfg.Storage.Badger.SyncWrites,
			ValueLogFileSize: cfg.Storage.Badger.ValueLogFileSize,
		}
		store, err := badger.NewBadgerStorage(badgerCfg)
		if err != nil {
			return nil, fmt.Errorf("badger storage: %w", err)
		}
		log.Info("Initialized Badger storage", "path", badgerCfg.Path)
		return store, nil
	case "redis":
		store, err := redis.Dial(ctx, &redis.Config{
			Address:   cfg.Storage.Redis.Address,
			Password:  cfg.Storage.Redis.Password,
			DB:        cfg.Storage.Redis.DB,
			KeyPrefix: cfg.Storage.Redis.KeyPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("redis storage: %w", err)
		}
		log.Info("Initialized Redis storage", "address", cfg.Storage.Redis.Address)
		return store, nil
	case "sqlite":
		store, err := sqlite.Open(cfg.Storage.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("sqlite storage: %w", err)
		}
		log.Info("Initialized SQLite storage", "path", cfg.Storage.SQLite.Path)
		return store, nil
	case "memory":
		log.Info("Initialized memory storage")
		return memory.NewMemoryStorage(), nil
	default:
		log.Warn("Unknown storage type, using memory storage", "type", cfg.Storage.Type)
		return memory.NewMemoryStorage(), nil
	}
}

func newProvider(ctx context.Context, cfg *config.Config) (llm.Provider, error) {
	opts := llm.Options{Temperature: cfg.LLM.Temperature, MaxTokens: cfg.LLM.MaxTokens}
	switch cfg.LLM.Provider {
	case "gemini":
		p, err := llm.NewGemini(ctx, llm.GeminiConfig{
			APIKey:  cfg.LLM.Gemini.APIKey,
			Model:   cfg.LLM.Gemini.Model,
			Options: opts,
		})
		if err != nil {
			return nil, fmt.Errorf("gemini provider: %w", err)
		}
		return p, nil
	default:
		return llm.NewOpenAI(llm.OpenAIConfig{
			APIKey:  cfg.LLM.OpenAI.APIKey,
			BaseURL: cfg.LLM.OpenAI.BaseURL,
			Model:   cfg.LLM.OpenAI.Model,
			Timeout: cfg.Chat.InferenceTimeout,
			Options: opts,
		}), nil
	}
}

func newSender(cfg *config.Config) (notify.Sender, error) {
	switch cfg.Notify.Provider {
	case "resend":
		if cfg.Notify.APIKey == "" {
			return nil, errors.New("notify.api_key is required for the resend provider")
		}
		return notify.NewResend(notify.ResendConfig{
			APIKey:  cfg.Notify.APIKey,
			BaseURL: cfg.Notify.BaseURL,
			Timeout: cfg.Notify.Timeout,
		}), nil
	default:
		return notify.Disabled{}, nil
	}
}

func metricsConfig(cfg *config.Config) metrics.Config {
	defaults := metrics.DefaultConfig()
	return metrics.Config{
		Enabled:                  cfg.Metrics.Enabled,
		Port:                     cfg.Metrics.Port,
		Path:                     cfg.Metrics.Path,
		ChatDurationBuckets:      defaults.ChatDurationBuckets,
		InferenceDurationBuckets: defaults.InferenceDurationBuckets,
		StorageDurationBuckets:   defaults.StorageDurationBuckets,
		HTTPDurationBuckets:      defaults.HTTPDurationBuckets,
	}
}

func chatConfig(cfg *config.Config) chatbot.Config {
	return chatbot.Config{
		RateLimit:        cfg.Chat.RateLimit,
		RateWindow:       cfg.Chat.RateWindow,
		CacheExpiry:      cfg.Chat.CacheExpiry,
		MemoryLength:     cfg.Chat.MaxMemoryLength,
		MaxMessageLength: cfg.Chat.MaxMessageLength,
		InferenceTimeout: cfg.Chat.InferenceTimeout,
	}
}

func buildOverrides() map[string]interface{} {
	overrides := make(map[string]interface{})

	if *appName != "" {
		overrides["app.name"] = *appName
	}
	if *serverPort != 0 {
		overrides["server.port"] = *serverPort
	}
	if *logLevel != "" {
		overrides["log.level"] = *logLevel
	}
	if *storageType != "" {
		overrides["storage.type"] = *storageType
	}
	if *debugMode {
		overrides["app.debug"] = true
	}

	return overrides
}

func printVersion() {
	fmt.Printf("Folio - Portfolio backend\n")
	fmt.Printf("Version:    %s\n", version.Version)
	fmt.Printf("Build Time: %s\n", version.BuildTime)
	fmt.Printf("Git Commit: %s\n", version.GitCommit)
	fmt.Printf("Go Version: %s\n", version.GoVersion)
}

func printHelp() {
	fmt.Printf("Folio - Portfolio backend with content management and an AI chatbot\n\n")
	fmt.Printf("Usage: folio [options]\n\n")
	fmt.Printf("Options:\n")
	flag.PrintDefaults()
	fmt.Printf("\nExamples:\n")
	fmt.Printf("  folio                                     # Run with default config\n")
	fmt.Printf("  folio -config config.yaml                 # Use specific config file\n")
	fmt.Printf("  folio -port 9090 -log-level debug         # Override specific options\n")
	fmt.Printf("  folio -storage memory                     # Run without persistence\n")
	fmt.Printf("  folio -version                            # Print version info\n")
}
