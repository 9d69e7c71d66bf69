// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"datadrop-backend/internal/auth"
	"datadrop-backend/internal/config"
	fileController "datadrop-backend/internal/controller/file"
	urlController "datadrop-backend/internal/controller/url"
	"datadrop-backend/internal/middleware"
	"datadrop-backend/internal/repository"
	"datadrop-backend/internal/service"

	// Init swagger doc
	_ "datadrop-backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrigins := strings.Split(s.Config.Server.AllowOrigins, ",")

	googleOauth := &oauth2.Config{
		ClientID:     s.Config.Google.ClientID,
		ClientSecret: s.Config.Google.ClientSecret,
		Scopes:       s.Config.Google.Scopes,
		Endpoint:     oauthEndpoint(s.Config),
		RedirectURL:  s.Config.Google.RedirectURL,
	}

	urls := service.NewUrlService(repository.NewUrlRepository(s.DB))
	gAuth := auth.NewGoogleAuthHandler(
		repository.NewUserRepository(s.DB),
		repository.NewAccessTokenRepository(s.DB),
		googleOauth,
		s.Config.Google.UserInfoURL,
		s.Config.Google.HTTPTimeout,
	)
	files := fileController.NewFileController(s.Storage, urls)
	urlCtrl := urlController.NewUrlController(urls)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		fileRoute := v1.Group("/files")
		{
			fileRoute.POST("/upload", middleware.SizeLimit(10<<20), files.Upload)
			fileRoute.GET("", files.List)
		}

		urlRoute := v1.Group("/url")
		{
			urlRoute.GET("", urlCtrl.GetAll)
			urlRoute.GET(":id", urlCtrl.GetByID)
			urlRoute.POST("", urlCtrl.Create)
		}

		authRoute := v1.Group("/auth/google")
		{
			authRoute.GET("", gAuth.SignIn)
			authRoute.GET("/oauth2callback", gAuth.Callback)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// oauthEndpoint returns Google's published endpoints unless the configuration
// overrides them (tests point these at a stub provider).
func oauthEndpoint(cfg *config.Config) oauth2.Endpoint {
	if cfg.Google.AuthURL == "" && cfg.Google.TokenURL == "" {
		return google.Endpoint
	}
	return oauth2.Endpoint{
		AuthURL:  cfg.Google.AuthURL,
		TokenURL: cfg.Google.TokenURL,
	}
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *Server) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
