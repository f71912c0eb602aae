package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-app/config"
	"github.com/yeremiapane/menu-app/controllers"
	"github.com/yeremiapane/menu-app/middlewares"
	"github.com/yeremiapane/menu-app/services"
	"github.com/yeremiapane/menu-app/utils"
)

func SetupRouter(cfg *config.Config, seed services.StoreConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.MetricsMiddleware())

	rateLimiter := middlewares.NewRateLimiter(cfg.RateLimit, cfg.RateInterval)
	r.Use(rateLimiter.RateLimit())

	signer := utils.NewSnapshotSigner(cfg.SnapshotSecret, cfg.SnapshotTTL)

	// Inisialisasi controller
	courseCtrl := controllers.NewCourseController()
	menuCtrl := controllers.NewMenuController(seed, services.NewMenuView(cfg.ViewConfig()), signer)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(utils.MetricsHandler()))

	// -- COURSES --
	r.GET("/courses", courseCtrl.GetAllCourses)
	r.GET("/courses/validate", courseCtrl.ValidateCourse)

	// -- MENUS (Home screen) --
	menus := r.Group("/menus")
	menus.Use(middlewares.SnapshotMiddleware(signer))
	{
		menus.GET("", menuCtrl.GetAllMenus)
		menus.GET("/by-course", menuCtrl.GetMenuByCourse)
		menus.GET("/summary", menuCtrl.GetMenuSummary)
		menus.GET("/representative", menuCtrl.GetRepresentative)
	}

	// -- MENUS (Add Menu screen and list edits) --
	changes := menus.Group("")
	changes.Use(middlewares.NewStrictRateLimiter(cfg.ChangesPerMin, cfg.ChangesBurst))
	changes.Use(middlewares.MenuChangeLogger())
	{
		changes.POST("", menuCtrl.CreateMenu)
		changes.DELETE("", menuCtrl.ClearMenus)
		changes.DELETE("/:index", menuCtrl.DeleteMenu)
	}

	return r
}
