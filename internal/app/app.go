package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	_ "modernc.org/sqlite"

	"github.com/passtrack-app/passtrack/internal/config"
	"github.com/passtrack-app/passtrack/internal/domain/passing"
	"github.com/passtrack-app/passtrack/internal/domain/player"
	"github.com/passtrack-app/passtrack/internal/domain/session"
	"github.com/passtrack-app/passtrack/internal/infrastructure/repository/memory"
	"github.com/passtrack-app/passtrack/internal/infrastructure/repository/postgres"
	sqliterepo "github.com/passtrack-app/passtrack/internal/infrastructure/repository/sqlite"
	"github.com/passtrack-app/passtrack/internal/interfaces/httpapi"
	idgen "github.com/passtrack-app/passtrack/internal/platform/id"
	"github.com/passtrack-app/passtrack/internal/platform/logging"
	"github.com/passtrack-app/passtrack/internal/usecase"
)

const dbPingTimeout = 5 * time.Second

type repositories struct {
	players player.Repository
	session session.Repository
	passing passing.Repository
}

// NewHTTPServer wires the storage backend selected by DB_DRIVER into the
// service layer and returns the configured server plus a cleanup func that
// releases the database handle.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	playerSvc := usecase.NewPlayerService(repos.players, idgen.NewRandomGenerator())
	sessionSvc := usecase.NewSessionService(repos.session, idgen.NewRandomGenerator())
	passingSvc := usecase.NewPassingService(repos.session, repos.players, repos.passing, idgen.NewRandomGenerator())
	exportSvc := usecase.NewExportService(repos.session, repos.passing, cfg.ExportWorkers, logger)

	handler := httpapi.NewHandler(playerSvc, sessionSvc, passingSvc, exportSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, func() error { cleanup(); return nil }, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func(), error) {
	switch cfg.DBDriver {
	case config.DriverMemory:
		logger.Info("storage backend", "driver", cfg.DBDriver)
		playerRepo := memory.NewPlayerRepository()
		return repositories{
			players: playerRepo,
			session: memory.NewSessionRepository(),
			passing: memory.NewPassEventRepository(playerRepo),
		}, func() {}, nil

	case config.DriverPostgres:
		db, err := openDB(cfg, "postgres")
		if err != nil {
			return repositories{}, nil, err
		}
		logger.Info("storage backend", "driver", cfg.DBDriver, "database", dbNameFromURL(cfg.DBURL))
		return repositories{
			players: postgres.NewPlayerRepository(db),
			session: postgres.NewSessionRepository(db),
			passing: postgres.NewPassEventRepository(db),
		}, func() { _ = db.Close() }, nil

	case config.DriverSQLite:
		db, err := openDB(cfg, "sqlite")
		if err != nil {
			return repositories{}, nil, err
		}
		logger.Info("storage backend", "driver", cfg.DBDriver, "database", dbNameFromURL(cfg.DBURL))
		return repositories{
			players: sqliterepo.NewPlayerRepository(db),
			session: sqliterepo.NewSessionRepository(db),
			passing: sqliterepo.NewPassEventRepository(db),
		}, func() { _ = db.Close() }, nil

	default:
		return repositories{}, nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func openDB(cfg config.Config, driverName string) (*sqlx.DB, error) {
	db, err := otelsqlx.Open(driverName, cfg.DBURL,
		otelsql.WithDBSystem(driverName),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driverName, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s database: %w", driverName, err)
	}

	return db, nil
}
