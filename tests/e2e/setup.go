//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel-frontdesk/cmd/bootstrap"
	"hotel-frontdesk/cmd/bootstrap/components"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/config"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "frontdesk"
	pgPassword = "frontdesk"
	pgPort     = "5432/tcp"
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgErr       error
)

// hotelDB points at one per-process database inside the shared container.
type hotelDB struct {
	host string
	port nat.Port
	name string
}

func (h hotelDB) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, h.host, h.port.Port(), database)
}

func (h hotelDB) config() config.DBConfig {
	return config.DBConfig{
		Host:     h.host,
		Port:     h.port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   h.name,
		SSLMode:  "disable",
		TimeZone: "Asia/Jakarta",
	}
}

// postgres starts the container once per test binary. Data lives on tmpfs with durability off.
func postgres(t *testing.T) testcontainers.Container {
	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		pgContainer, pgErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{pgPort},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "synchronous_commit=off",
					"-c", "full_page_writes=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return hotelDB{host: host, port: port}.dsn("postgres")
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "hotel-frontdesk-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, pgErr, "PostgreSQLコンテナの起動に失敗")
	return pgContainer
}

// createDatabase gives the calling process its own database and drops it on cleanup.
func createDatabase(t *testing.T) hotelDB {
	gin.SetMode(gin.TestMode)
	c := postgres(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, nat.Port(pgPort))
	require.NoError(t, err)

	target := hotelDB{host: host, port: port, name: "hotel_" + strings.ReplaceAll(uuid.NewString(), "-", "")}

	admin, err := pgxpool.New(ctx, target.dsn("postgres"))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// parallel suites race on template1; a short retry is enough
	require.Eventually(t, func() bool {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+target.name)
		return err == nil
	}, 5*time.Second, 300*time.Millisecond, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, target.dsn("postgres"))
		if err != nil {
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+target.name+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", target.name, "error", err)
		}
	})

	return target
}

// migrationsDir resolves the repository's migrations directory from this file's location.
func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}

// applyMigrations runs every migration file in lexical order. The atlas CLI is not needed in tests.
func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	files, err := filepath.Glob(filepath.Join(migrationsDir(), "*.sql"))
	if err != nil {
		return errs.Wrap(err, "failed to list migrations")
	}
	sort.Strings(files)

	for _, f := range files {
		sqlText, err := os.ReadFile(f)
		if err != nil {
			return errs.Wrapf(err, "failed to read migration %s", filepath.Base(f))
		}
		if _, err := pool.Exec(ctx, string(sqlText)); err != nil {
			return errs.Wrapf(err, "failed to apply migration %s", filepath.Base(f))
		}
	}
	return nil
}

// startApp wires the production fx graph against the test database and a fast test config.
func startApp(t *testing.T, pool *pgxpool.Pool, dbCfg config.DBConfig) (*gin.Engine, config.Config) {
	var (
		router *gin.Engine
		cfg    config.Config
	)

	app := fx.New(
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() config.Config {
				c := config.NewTestConfig()
				c.DB = dbCfg
				return c
			},
			bootstrap.NewHotelLocation,
			bootstrap.NewHotelPolicy,
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.CacheModule,
		bootstrap.BrokerModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,
		bootstrap.WorkerModule,
		fx.Populate(&router, &cfg),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err)
		}
	})

	return router, cfg
}

// SharedSuite gives every e2e suite a migrated database, the wired router and the worker.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	target := createDatabase(t)

	pool, _, err := db.Connect(target.config())
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(pool.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, applyMigrations(ctx, pool), "データベースマイグレーションに失敗")
	require.NoError(t, dbtest.SeedReferenceData(pool), "参照データの投入に失敗")

	s.DB = pool
	s.Router, s.Config = startApp(t, pool, target.config())
}

// SetupSubTest truncates and reseeds so subtests never see each other's rows.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
}
