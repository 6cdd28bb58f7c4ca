package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/unrolled/secure"
	"go.uber.org/zap"

	"videogames/backend/internal/config"
	"videogames/backend/internal/handler"
	"videogames/backend/internal/middleware"
)

// Deps is everything the router needs from the outside.
type Deps struct {
	Config   *config.Config
	Handler  *handler.Handler
	Log      *zap.Logger
	Registry prometheus.Registerer
	Gatherer prometheus.Gatherer
}

// NewRouter builds the gin engine with every API route registered once.
func NewRouter(deps Deps) (*gin.Engine, error) {
	if deps.Config.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics, err := middleware.NewMetrics(deps.Registry)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.AccessLog(deps.Log),
		metrics.Handler(),
		gin.Recovery(),
	)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	h := deps.Handler

	router.POST("/associate-genres", h.AssociateGenres)
	router.GET("/genres", h.GetGenres)
	router.GET("/videogamegenre/:genre", h.GetVideogamesByGenre)
	router.GET("/videogamesfromform", h.GetVideogamesFromForm)
	router.GET("/reverse/text", h.ReverseText)

	videogames := router.Group("/videogames")
	{
		videogames.GET("", h.GetVideogames)
		videogames.POST("", h.CreateVideogame)
		// Static segments must be registered alongside /:id.
		videogames.GET("/name", h.SearchVideogamesByName)
		videogames.GET("/dbname", h.GetVideogamesByDBName)
		videogames.GET("/:id", h.GetVideogameByID)

		videogames.GET("/searchbydate/:date", h.SearchVideogamesByDate)
		videogames.GET("/searchbydaterange/:start/:end", h.SearchVideogamesByDateRange)

		videogames.DELETE("/deletebyid/:id", h.DeleteVideogameByID)
		videogames.DELETE("/deletebyname/:name", h.DeleteVideogamesByName)
		videogames.DELETE("/deletebydate/:date", h.DeleteVideogamesByDate)
		videogames.DELETE("/deletebydaterange/:start/:end", h.DeleteVideogamesByDateRange)
	}

	return router, nil
}

// Wrap adds CORS and security headers around the router.
func Wrap(cfg *config.Config, next http.Handler) http.Handler {
	dev := !cfg.Production()

	next = secure.New(secure.Options{
		BrowserXssFilter:     true,
		ContentTypeNosniff:   true,
		FrameDeny:            true,
		HostsProxyHeaders:    []string{"X-Forwarded-Host"},
		IsDevelopment:        dev,
		SSLProxyHeaders:      map[string]string{"X-Forwarded-Proto": "https"},
		STSIncludeSubdomains: true,
		STSSeconds:           315360000,
	}).Handler(next)

	return cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}).Handler(next)
}

// New returns the HTTP server for cfg.
func New(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}
