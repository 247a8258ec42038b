//go:build unit

package api_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"time"

	"preloved-market/internal/domain/user"
	"preloved-market/internal/handler"
	"preloved-market/internal/handler/api"
	"preloved-market/internal/handler/middleware"
	"preloved-market/internal/pkg/config"
	"preloved-market/internal/pkg/jwt"
	"preloved-market/tests/common/authtest"
	testhttp "preloved-market/tests/common/httptest"
	commandsmock "preloved-market/tests/mock/commands"
	queriesmock "preloved-market/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// routerSuite serves the production router with every use case mocked, so each
// request passes through the real auth, binding and error rendering.
type routerSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	tokens   *authtest.JWTHelper

	markets     *commandsmock.MockMarketCommands
	sellers     *commandsmock.MockSellerCommands
	enrollments *commandsmock.MockEnrollmentCommands
	hangers     *commandsmock.MockHangerCommands
	qrcodes     *commandsmock.MockQRCodeCommands
	items       *commandsmock.MockItemCommands
	carts       *commandsmock.MockCartCommands

	marketQueries   *queriesmock.MockMarketQueries
	capacityQueries *queriesmock.MockCapacityQueries
	quotaQueries    *queriesmock.MockQuotaQueries
	itemQueries     *queriesmock.MockItemQueries
	cartQueries     *queriesmock.MockCartQueries

	seller user.Actor
	staff  user.Actor
	buyer  user.Actor

	sellerToken string
	staffToken  string
	buyerToken  string
}

func (s *routerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()

	s.mockCtrl = gomock.NewController(s.T())
	s.markets = commandsmock.NewMockMarketCommands(s.mockCtrl)
	s.sellers = commandsmock.NewMockSellerCommands(s.mockCtrl)
	s.enrollments = commandsmock.NewMockEnrollmentCommands(s.mockCtrl)
	s.hangers = commandsmock.NewMockHangerCommands(s.mockCtrl)
	s.qrcodes = commandsmock.NewMockQRCodeCommands(s.mockCtrl)
	s.items = commandsmock.NewMockItemCommands(s.mockCtrl)
	s.carts = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.marketQueries = queriesmock.NewMockMarketQueries(s.mockCtrl)
	s.capacityQueries = queriesmock.NewMockCapacityQueries(s.mockCtrl)
	s.quotaQueries = queriesmock.NewMockQuotaQueries(s.mockCtrl)
	s.itemQueries = queriesmock.NewMockItemQueries(s.mockCtrl)
	s.cartQueries = queriesmock.NewMockCartQueries(s.mockCtrl)

	s.router = gin.New()
	err := handler.NewRouter(s.router, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), handler.Handlers{
		Market:     api.NewMarketHandler(s.markets, s.marketQueries, s.capacityQueries),
		Enrollment: api.NewEnrollmentHandler(s.enrollments, s.hangers, s.quotaQueries),
		QRCode:     api.NewQRCodeHandler(s.qrcodes, s.itemQueries),
		Item:       api.NewItemHandler(s.items, s.itemQueries),
		Cart:       api.NewCartHandler(s.carts, s.cartQueries),
		Seller:     api.NewSellerHandler(s.sellers),
		Auth:       middleware.NewAuthMiddleware(jwt.NewService(cfg.JWT.Secret, time.Hour)),
	})
	require.NoError(s.T(), err)

	s.tokens = authtest.NewJWTHelper(cfg.JWT)
	s.seller, s.sellerToken = s.tokens.Actor(s.T(), user.RoleSeller)
	s.staff, s.staffToken = s.tokens.Actor(s.T(), user.RoleOperator)
	s.buyer, s.buyerToken = s.tokens.Actor(s.T(), user.RoleBuyer)
}

func (s *routerSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *routerSuite) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	return testhttp.PerformRequest(s.T(), s.router, method, path, body, token)
}

// errorCase maps a use-case error to the status and code the client sees.
type errorCase struct {
	name       string
	err        error
	wantStatus int
	wantCode   string
}

type validationCase struct {
	name   string
	mutate func(m map[string]any)
}
