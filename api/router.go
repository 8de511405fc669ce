package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"promohub/internal/auth"
	"promohub/internal/catalog"
	"promohub/internal/config"
	"promohub/internal/ledger"
	"promohub/internal/partner"
	"promohub/internal/promo"
	"promohub/internal/rebate"
)

// App bundles the application services behind the HTTP surface.
type App struct {
	Catalog  *catalog.Service
	Partners *partner.Service
	Promos   *promo.Service
	Ledger   *ledger.Service
	Auth     *auth.Service
	Logger   *zap.Logger
}

// NewApp builds the service graph over fresh in-memory storages.
func NewApp(cfg *config.Config, logger *zap.Logger) *App {
	partners := partner.NewService(partner.NewLocalStorage(), logger)
	promos := promo.NewService(promo.NewLocalStorage(), logger)

	return &App{
		Catalog:  catalog.NewService(catalog.NewLocalStorage(), logger),
		Partners: partners,
		Promos:   promos,
		Ledger:   ledger.NewService(ledger.NewLocalStorage(), promos, partners, logger),
		Auth:     auth.NewService(auth.NewLocalStorage(), logger, []byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL),
		Logger:   logger,
	}
}

// snapshot fetches the full-collection state the reporting layer joins
// over. The four reads are not transactionally consistent with each
// other; per-record last-write-wins is the only guarantee, matching the
// backing store's contract.
func (a *App) snapshot() (rebate.Dataset, error) {
	promos, err := a.Promos.List()
	if err != nil {
		return rebate.Dataset{}, err
	}
	partners, err := a.Partners.List()
	if err != nil {
		return rebate.Dataset{}, err
	}
	skus, err := a.Catalog.List()
	if err != nil {
		return rebate.Dataset{}, err
	}
	entries, err := a.Ledger.List()
	if err != nil {
		return rebate.Dataset{}, err
	}
	return rebate.Dataset{
		Promotions: promos,
		Partners:   partners,
		SKUs:       skus,
		Entries:    entries,
	}, nil
}

// InitRoutes registers every endpoint on the given Gin engine.
func InitRoutes(e *gin.Engine, app *App) {
	authHandler := newAuthHandler(app.Auth, app.Logger)
	skuHandler := newSKUHandler(app.Catalog, app.Logger)
	partnerHandler := newPartnerHandler(app.Partners, app.Logger)
	promoHandler := newPromotionHandler(app.Promos, app.Logger)
	userHandler := newUserHandler(app.Auth, app.Logger)
	claimHandler := newClaimHandler(app, app.Logger)
	reportHandler := newReportHandler(app, app.Logger)

	e.POST("/auth/login", authHandler.handleLogin)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	authed := e.Group("/api", AuthMiddleware(app.Auth))
	authed.GET("/me", authHandler.handleMe)

	// Partner portal reads: active campaigns and the catalog they price.
	authed.GET("/promotions", promoHandler.handleList)
	authed.GET("/skus", skuHandler.handleList)

	authed.POST("/claims", claimHandler.handleSubmit)
	authed.GET("/reports/partner/:id", reportHandler.handlePartnerStatement)

	admin := authed.Group("", RequireAdmin())

	admin.POST("/skus", skuHandler.handleCreate)
	admin.PUT("/skus/:id", skuHandler.handleUpdate)
	admin.DELETE("/skus/:id", skuHandler.handleDelete)
	admin.DELETE("/skus", skuHandler.handleDeleteBatch)
	admin.POST("/skus/import", skuHandler.handleImportCSV)

	admin.GET("/partners", partnerHandler.handleList)
	admin.POST("/partners", partnerHandler.handleCreate)
	admin.PUT("/partners/:id", partnerHandler.handleUpdate)
	admin.DELETE("/partners/:id", partnerHandler.handleDelete)

	admin.POST("/promotions", promoHandler.handleCreate)
	admin.PUT("/promotions/:id", promoHandler.handleUpdate)
	admin.DELETE("/promotions/:id", promoHandler.handleDelete)

	admin.GET("/users", userHandler.handleList)
	admin.POST("/users", userHandler.handleCreate)
	admin.PUT("/users/:id", userHandler.handleUpdate)
	admin.DELETE("/users/:id", userHandler.handleDelete)

	admin.GET("/claims", claimHandler.handleList)
	admin.GET("/claims/export", claimHandler.handleExportCSV)
	admin.PATCH("/claims/:id/payment", claimHandler.handleConfirmPayment)

	admin.GET("/reports/dashboard", reportHandler.handleDashboard)
}
