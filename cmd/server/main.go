package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"transport-management-service/internal/adapters/credentials"
	"transport-management-service/internal/adapters/events"
	"transport-management-service/internal/adapters/journal"
	"transport-management-service/internal/adapters/seed"
	"transport-management-service/internal/adapters/session"
	"transport-management-service/internal/api"
	"transport-management-service/internal/api/handlers"
	"transport-management-service/internal/config"
	"transport-management-service/internal/domain"
	"transport-management-service/internal/platform/db"
	"transport-management-service/internal/platform/logging"
	"transport-management-service/internal/platform/metrics"
	"transport-management-service/internal/ports"
	"transport-management-service/internal/services"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

// main is the application composition root.
// It wires concrete adapters (journal, sessions, Kafka) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.Production())
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	checks := map[string]handlers.Check{}

	j, closeJournal, err := openJournal(ctx, cfg, logger, checks)
	if err != nil {
		return err
	}
	defer closeJournal()

	m := metrics.New()
	recorders := services.Recorders{j, m}

	if cfg.KafkaBroker != "" {
		pub := events.NewKafkaPublisher(cfg.KafkaBroker, cfg.KafkaTopic)
		defer func() { _ = pub.Close() }()
		recorders = append(recorders, pub)
		logger.Info("publishing transitions", zap.String("broker", cfg.KafkaBroker), zap.String("topic", cfg.KafkaTopic))
	}

	fixtures, err := seed.LoadFile(cfg.SeedPath)
	if err != nil {
		return err
	}

	reg := services.NewRegistry(services.RegistryOptions{Recorder: recorders, Logger: logger})
	docs, err := fixtures.Fixtures()
	if err != nil {
		return err
	}
	// Seeding does not record transitions; the journal only sees live changes.
	if err := reg.Seed(ctx, docs); err != nil {
		return err
	}

	auth, closeSessions, err := buildAuthenticator(ctx, cfg, fixtures, checks)
	if err != nil {
		return err
	}
	defer closeSessions()

	router := api.NewRouter(api.Deps{
		Registry: reg,
		Auth:     auth,
		Policy:   domain.DefaultAccessPolicy(),
		Journal:  j,
		Metrics:  m,
		Checks:   checks,
		Logger:   logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("journal", cfg.JournalDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openJournal picks the transition journal named by JOURNAL_DRIVER.
// The SQLite schema is created on startup; Postgres is initialized by cmd/dbtool.
func openJournal(ctx context.Context, cfg config.Config, logger *zap.Logger, checks map[string]handlers.Check) (ports.TransitionJournal, func(), error) {
	switch cfg.JournalDriver {
	case config.JournalSQLite:
		conn, err := db.Open(ctx, db.DriverSQLite, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := journal.InitSQLiteSchema(ctx, conn); err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		checks["journal"] = pinger(conn)
		return journal.NewSqliteJournal(conn, logger), func() { _ = conn.Close() }, nil

	case config.JournalPostgres:
		conn, err := db.Open(ctx, db.DriverPostgres, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		checks["journal"] = pinger(conn)
		return journal.NewSQLJournal(conn, logger), func() { _ = conn.Close() }, nil

	default:
		return journal.NewMemoryJournal(), func() {}, nil
	}
}

func buildAuthenticator(ctx context.Context, cfg config.Config, f *seed.File, checks map[string]handlers.Check) (*services.Authenticator, func(), error) {
	staffAccounts, err := f.StaffAccounts()
	if err != nil {
		return nil, nil, err
	}
	staff, err := credentials.NewStaticVerifier(staffAccounts, 0)
	if err != nil {
		return nil, nil, err
	}

	customerAccounts, err := f.CustomerAccounts()
	if err != nil {
		return nil, nil, err
	}
	customers, err := credentials.NewStaticVerifier(customerAccounts, 0)
	if err != nil {
		return nil, nil, err
	}

	var sessions ports.SessionStore = session.NewMemorySessionStore(nil)
	closeSessions := func() {}
	if cfg.RedisURL != "" {
		client, err := session.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		sessions = session.NewRedisSessionStore(client)
		closeSessions = func() { _ = client.Close() }
		checks["sessions"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
	}

	return &services.Authenticator{
		Staff:     staff,
		Customers: customers,
		Sessions:  sessions,
		TTL:       cfg.SessionTTL,
	}, closeSessions, nil
}

func pinger(conn *sql.DB) handlers.Check {
	return conn.PingContext
}
