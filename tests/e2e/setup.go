//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"preloved-market/cmd/bootstrap"
	"preloved-market/cmd/bootstrap/components"
	"preloved-market/internal/pkg/config"
	"preloved-market/internal/worker"
	"preloved-market/tests/common/authtest"
	"preloved-market/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// buildApp starts the production fx graph against the test database. Only the config
// is replaced; store, cache, use cases and router are the real ones.
func buildApp(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	var router *gin.Engine

	app := fx.New(
		fx.Provide(func() config.Config { return cfg }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.StoreModule,
		bootstrap.JWTModule,
		components.UseCaseModule,
		components.HandlerModule,
		worker.Module,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})
	require.NotNil(t, router, "router was not built")
	return router
}

// SharedSuite gives every e2e suite a migrated database of its own and the full HTTP stack.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	Tokens *authtest.JWTHelper
}

func (s *SharedSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	pool, dbCfg := dbtest.NewDatabase(s.T())

	cfg := config.NewTestConfig()
	cfg.Store.Driver = config.StoreDriverPostgres
	cfg.DB = dbCfg

	s.DB = pool
	s.Config = cfg
	s.Router = buildApp(s.T(), cfg)
	s.Tokens = authtest.NewJWTHelper(cfg.JWT)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
}
