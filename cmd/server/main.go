package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"molle-settlement/config"
	"molle-settlement/internal/cache"
	"molle-settlement/internal/database"
	"molle-settlement/internal/handler"
	"molle-settlement/internal/notify"
	"molle-settlement/internal/queue"
	"molle-settlement/internal/repository"
	"molle-settlement/internal/service"
	"molle-settlement/internal/worker"
	"molle-settlement/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

func main() {
	defer logger.Sync()
	log := logger.WithComponent("main")

	if err := run(); err != nil {
		log.Error("server exited with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()
	if cfg.Server.GinMode == gin.DebugMode {
		logger.SetLevel(zapcore.DebugLevel)
	}
	log := logger.WithComponent("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.InitDatabase(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Settlement.Migrate {
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
	}

	rdb, err := database.InitRedis(ctx, &cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()

	bookingRepo := repository.NewBookingRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)

	feeService := service.NewFeeService(
		repository.NewSettingsRepository(pool),
		eventRepo,
		userRepo,
		cache.NewRedisFeeSettingsCache(rdb),
		cfg.Fees,
		cfg.Settlement.FeeCacheTTL,
	)
	settlementService := service.NewSettlementService(
		pool,
		service.SettlementRepositories{
			Bookings:   bookingRepo,
			Payments:   repository.NewPaymentRepository(pool),
			TicketData: repository.NewTicketDataRepository(pool),
			Tickets:    ticketRepo,
			Events:     eventRepo,
			Users:      userRepo,
			Wallets:    repository.NewWalletTransactionRepository(pool),
		},
		feeService,
		cache.NewRedisSettlementLocker(rdb),
		notify.NewNotifier(cfg.Notify),
		cfg.Settlement,
	)
	ticketService := service.NewTicketService(ticketRepo, bookingRepo, eventRepo, userRepo, feeService)

	if cfg.Webhook.Secret == "" {
		log.Warn("WEBHOOK_SECRET not set, all webhook calls will be rejected")
	}

	g, gctx := errgroup.WithContext(ctx)

	var settlementQueue queue.SettlementQueue
	if cfg.Settlement.AsyncWebhook {
		settlementQueue, err = queue.NewRedisStreamSettlementQueue(ctx, rdb, "", nil)
		if err != nil {
			return err
		}
		w := worker.NewSettlementWorker(settlementService, settlementQueue)
		if err := w.Start(gctx); err != nil {
			return err
		}
		g.Go(func() error {
			<-w.Done()
			return nil
		})
		log.Info("async webhook settlement enabled")
	}

	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	handler.RegisterSystemRoutes(router)
	handler.NewSettlementHandler(settlementService, settlementQueue, cfg.Webhook).RegisterRoutes(router)
	handler.NewFeeHandler(feeService).RegisterRoutes(router)
	handler.NewTicketHandler(ticketService).RegisterRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g.Go(func() error {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
