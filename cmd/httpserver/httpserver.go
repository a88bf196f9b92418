// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gastos-dev/gastos/internal/balancedelivery"
	"github.com/gastos-dev/gastos/internal/balancerepo"
	"github.com/gastos-dev/gastos/internal/balanceservice"
	"github.com/gastos-dev/gastos/internal/expensedelivery"
	"github.com/gastos-dev/gastos/internal/expenserepo"
	"github.com/gastos-dev/gastos/internal/expenseservice"
	"github.com/gastos-dev/gastos/internal/messagedelivery"
	"github.com/gastos-dev/gastos/internal/messagerepo"
	"github.com/gastos-dev/gastos/internal/messageservice"
	"github.com/gastos-dev/gastos/internal/middleware"
	"github.com/gastos-dev/gastos/pkg/configpkg"
	"github.com/gastos-dev/gastos/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config

	// TokenMaker verifies the externally issued identity tokens. It is
	// exported so tests can mint tokens for request setup.
	TokenMaker tokenpkg.Maker
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	expenseRepo := expenserepo.NewRepoPGS(conn)
	balanceRepo := balancerepo.NewRepoPGS(conn)
	messageRepo := messagerepo.NewRepoPGS(conn)

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	expenseService := expenseservice.New(expenseRepo, config.DefaultExpenseDate)
	balanceService := balanceservice.New(balanceRepo)
	messageService := messageservice.New(messageRepo)

	expenseHandler := expensedelivery.NewHandler(expenseService)
	balanceHandler := balancedelivery.NewHandler(balanceService)
	messageHandler := messagedelivery.NewHandler(messageService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	// The consumer is a browser single page app served from another origin.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = config.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(tokenMaker))

	authRoutes.GET("/expenses", expenseHandler.List)
	authRoutes.POST("/expenses", expenseHandler.Create)
	authRoutes.PUT("/expenses", expenseHandler.Update)
	authRoutes.DELETE("/expenses", expenseHandler.Delete)

	authRoutes.GET("/balance", balanceHandler.Get)
	authRoutes.PUT("/balance", balanceHandler.Set)
	authRoutes.DELETE("/balance", balanceHandler.Delete)

	authRoutes.POST("/messages", messageHandler.Create)
	authRoutes.DELETE("/messages", messageHandler.Delete)

	server := &Server{
		DB:         conn,
		Engine:     engine,
		Config:     config,
		TokenMaker: tokenMaker,
	}

	return server, nil
}
