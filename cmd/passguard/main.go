package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/passguard/modules/chat"
	"github.com/dmitrymomot/passguard/pkg/chatbot"
	"github.com/dmitrymomot/passguard/pkg/chatws"
	"github.com/dmitrymomot/passguard/pkg/clientip"
	"github.com/dmitrymomot/passguard/pkg/config"
	"github.com/dmitrymomot/passguard/pkg/httpserver"
	"github.com/dmitrymomot/passguard/pkg/logger"
	"github.com/dmitrymomot/passguard/pkg/ratelimiter"
	"github.com/dmitrymomot/passguard/pkg/redis"
	"github.com/dmitrymomot/passguard/pkg/requestid"
)

// Rate limit store backends.
const (
	storeMemory = "memory"
	storeRedis  = "redis"
)

type appConfig struct {
	Env          string        `env:"APP_ENV" envDefault:"development"`
	Name         string        `env:"APP_NAME" envDefault:"passguard"`
	LogLevel     string        `env:"LOG_LEVEL"`
	TypingDelay  time.Duration `env:"CHAT_TYPING_DELAY" envDefault:"0s"`
	KeywordsFile string        `env:"CHAT_KEYWORDS_FILE"`
	TrustHeaders []string      `env:"TRUSTED_IP_HEADERS" envSeparator:","`
	LimitStore   string        `env:"RATE_LIMIT_STORE" envDefault:"memory"`

	RateLimit ratelimiter.Config
	Redis     redis.Config
	HTTP      httpserver.Config
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	slog.SetDefault(log)

	botOpts := []chatbot.Option{
		chatbot.WithTypingDelay(cfg.TypingDelay),
		chatbot.WithLogger(log),
	}
	if cfg.KeywordsFile != "" {
		kw, err := chatbot.LoadKeywords(cfg.KeywordsFile)
		if err != nil {
			return err
		}
		botOpts = append(botOpts, chatbot.WithClassifier(chatbot.NewClassifier(chatbot.WithKeywords(kw))))
	}
	bot := chatbot.NewBot(botOpts...)

	var checks []httpserver.Check
	store, closeStore, err := newLimitStore(ctx, cfg, &checks)
	if err != nil {
		return err
	}
	defer closeStore()

	bucket, err := ratelimiter.NewBucket(store, cfg.RateLimit)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	hub := chatws.NewHub(bot, chatws.WithLogger(log))
	hubDone := make(chan error, 1)
	go func() { hubDone <- hub.Run(ctx) }()

	ips := clientip.NewResolver(clientip.WithTrustedHeaders(cfg.TrustHeaders...))

	r := chi.NewRouter()
	r.Use(middleware.Recoverer, requestid.Middleware, ips.Middleware)
	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, checks...))
	r.Mount("/", chat.Router(chat.RouterOptions{
		Bot:       bot,
		Websocket: hub,
		RateLimit: ratelimiter.Middleware(bucket, ratelimiter.ClientIPKey,
			ratelimiter.WithMiddlewareLogger(log)),
		Logger: log,
	}))

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStopHook(cancel),
	)
	runErr := srv.Run(ctx, r)

	cancel()
	return errors.Join(runErr, <-hubDone)
}

// newLimitStore builds the rate limit store selected by RATE_LIMIT_STORE.
// The Redis backend also registers a readiness check.
func newLimitStore(ctx context.Context, cfg appConfig, checks *[]httpserver.Check) (ratelimiter.Store, func(), error) {
	switch cfg.LimitStore {
	case storeMemory, "":
		s := ratelimiter.NewMemoryStore()
		return s, func() { _ = s.Close() }, nil
	case storeRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		*checks = append(*checks, redis.Healthcheck(client))
		return ratelimiter.NewRedisStore(client), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown RATE_LIMIT_STORE %q", ratelimiter.ErrInvalidConfig, cfg.LimitStore)
	}
}
