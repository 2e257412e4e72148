package di

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"skillroots/internal/app/router"
	authadapters "skillroots/internal/feature/auth/adapters"
	authhandler "skillroots/internal/feature/auth/transport/handler"
	authusecase "skillroots/internal/feature/auth/usecase"
	dashboardhandler "skillroots/internal/feature/dashboard/transport/handler"
	dashboardusecase "skillroots/internal/feature/dashboard/usecase"
	insightshandler "skillroots/internal/feature/insights/transport/handler"
	insightsusecase "skillroots/internal/feature/insights/usecase"
	marketadapters "skillroots/internal/feature/marketplace/adapters"
	markethandler "skillroots/internal/feature/marketplace/transport/handler"
	marketusecase "skillroots/internal/feature/marketplace/usecase"
	translationhandler "skillroots/internal/feature/translation/transport/handler"
	translationusecase "skillroots/internal/feature/translation/usecase"
	videoadapters "skillroots/internal/feature/videos/adapters"
	videohandler "skillroots/internal/feature/videos/transport/handler"
	videousecase "skillroots/internal/feature/videos/usecase"
	"skillroots/internal/platform/config"
	platformhandler "skillroots/internal/platform/http/handler"
	jwtmw "skillroots/internal/platform/jwt"
)

// Deps are the long-lived resources the HTTP application is built from.
type Deps struct {
	Config *config.Config
	// Store is pinged by /healthz; nil reports ok.
	Store platformhandler.Pinger
	DB    *gorm.DB
	// Redis is optional. Without it sessions live in the store and translations are not cached.
	Redis *redis.Client
	AI    *AI
}

// NewRouter wires repositories, usecases and handlers onto one gin engine.
func NewRouter(d Deps) *gin.Engine {
	cfg := d.Config
	ai := d.AI
	if ai == nil {
		ai = &AI{}
	}

	// Repository
	userRepo := authadapters.NewUserRepository(d.DB)
	sessionRepo := NewSessionRepository(d.Redis, d.DB)
	videoRepo := videoadapters.NewVideoRepository(d.DB)
	itemRepo := marketadapters.NewItemRepository(d.DB)
	orderRepo := marketadapters.NewOrderRepository(d.DB)

	// Usecase
	tokens := jwtmw.NewGenerator(cfg.JWT.Secret, cfg.JWT.Expiration)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, tokens, cfg.SessionTTL)
	videoUC := videousecase.NewVideosUsecase(videoRepo)
	marketUC := marketusecase.NewMarketplaceUsecase(itemRepo, orderRepo, cfg.PaymentDelay)
	dashboardUC := dashboardusecase.NewDashboardUsecase(videoRepo, itemRepo)
	translationUC := translationusecase.NewTranslationUsecase(ai.Translator)
	insightsUC := insightsusecase.NewInsightsUsecase(ai.Searcher)

	// Handler
	h := router.Handlers{
		Health:      platformhandler.NewHealthHandler(d.Store),
		Auth:        authhandler.NewAuthHandler(authUC),
		Videos:      videohandler.NewVideoHandler(videoUC),
		Market:      markethandler.NewMarketplaceHandler(marketUC),
		Dashboard:   dashboardhandler.NewDashboardHandler(dashboardUC),
		Translation: translationhandler.NewTranslationHandler(translationUC),
		Insights:    insightshandler.NewInsightsHandler(insightsUC),
	}

	return router.NewRouter(h, jwtmw.AuthRequired(cfg.JWT.Secret, sessionRepo))
}
