package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "skillroots/internal/feature/auth/transport/handler"
	dashboardhandler "skillroots/internal/feature/dashboard/transport/handler"
	insightshandler "skillroots/internal/feature/insights/transport/handler"
	markethandler "skillroots/internal/feature/marketplace/transport/handler"
	translationhandler "skillroots/internal/feature/translation/transport/handler"
	videohandler "skillroots/internal/feature/videos/transport/handler"
	platformhandler "skillroots/internal/platform/http/handler"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Health      *platformhandler.HealthHandler
	Auth        *authhandler.AuthHandler
	Videos      *videohandler.VideoHandler
	Market      *markethandler.MarketplaceHandler
	Dashboard   *dashboardhandler.DashboardHandler
	Translation *translationhandler.TranslationHandler
	Insights    *insightshandler.InsightsHandler
}

// NewRouter builds the gin engine. authRequired guards every route that acts
// on behalf of the logged-in user.
func NewRouter(h Handlers, authRequired gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Webフロントエンドからの呼び出しのためCORSを許可
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsCfg))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	// 新規ユーザー登録
	r.POST("/signup", h.Auth.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", h.Auth.Login)

	r.GET("/videos", h.Videos.List)
	r.GET("/videos/:id", h.Videos.Get)
	r.POST("/videos/:id/views", h.Videos.Watch)

	r.GET("/items", h.Market.List)
	r.GET("/items/:id", h.Market.Get)

	r.GET("/translations", h.Translation.Translations)
	r.GET("/languages", h.Translation.Languages)

	// 認証必須のルート
	auth := r.Group("/")
	auth.Use(authRequired)
	{
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", h.Auth.Me)
		auth.GET("/me/videos", h.Videos.ListMine)
		auth.GET("/me/items", h.Market.ListMine)
		auth.GET("/me/orders", h.Market.Orders)
		auth.GET("/me/orders/:id", h.Market.Order)
		auth.GET("/me/stats", h.Dashboard.Stats)
		auth.GET("/me/wallet", h.Dashboard.Wallet)

		auth.POST("/videos", h.Videos.Upload)
		auth.POST("/videos/:id/like", h.Videos.Like)

		auth.POST("/items", h.Market.Sell)
		auth.POST("/items/:id/checkout", h.Market.Checkout)

		auth.POST("/insights", h.Insights.Ask)
	}

	return r
}
