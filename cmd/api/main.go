package main

import (
	"net/http"

	appcontext "github.com/InnovativeSphere/jewel-dashboard/internal/app_context"
	"github.com/InnovativeSphere/jewel-dashboard/internal/auth"
	"github.com/InnovativeSphere/jewel-dashboard/internal/config"
	"github.com/InnovativeSphere/jewel-dashboard/internal/controller"
	"github.com/InnovativeSphere/jewel-dashboard/internal/database"
	"github.com/InnovativeSphere/jewel-dashboard/internal/env"
	"github.com/InnovativeSphere/jewel-dashboard/internal/middleware"
	"github.com/InnovativeSphere/jewel-dashboard/internal/ratelimiter"
	"github.com/InnovativeSphere/jewel-dashboard/internal/repository"
	"github.com/InnovativeSphere/jewel-dashboard/internal/route"
	"github.com/InnovativeSphere/jewel-dashboard/internal/util"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)

	if err := cfg.Validate(); err != nil {
		logger.Fatal(err)
	}

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
			logger.Panic(err)
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger, jwtService)
	app := appcontext.Application{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		JWTService: jwtService,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RequestIDMiddleware)
	r.Use(_middleware.RateLimiterMiddleware)

	// Every resource path supports the same four methods; anything else gets
	// a 405 with the Allow header.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(ctx *gin.Context) {
		ctx.Header("Allow", "GET, POST, PUT, DELETE")
		util.ResponseFailed(ctx, http.StatusMethodNotAllowed, "Method "+ctx.Request.Method+" Not Allowed", nil, nil)
	})

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)

	rApi := r.Group("/api")

	route.Projects(rApi, _controller.Project, _middleware)
	route.Donations(rApi, _controller.Donation, _middleware)
	route.People(rApi, _controller.Person, _middleware)
	route.ProjectImages(rApi, _controller.ProjectImage, _middleware)
	route.ProjectPeople(rApi, _controller.ProjectPerson, _middleware)
	route.Partners(rApi, _controller.Partner, _middleware)
	route.Users(rApi, _controller.User, _middleware)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panic("Error running server: %v \n", err)
	}
}
