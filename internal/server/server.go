package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"resumeshot-backend/internal/ai"
	"resumeshot-backend/internal/config"
	"resumeshot-backend/internal/handler"
	appmw "resumeshot-backend/internal/middleware"
	"resumeshot-backend/internal/payment"
	"resumeshot-backend/internal/repository"
	"resumeshot-backend/internal/service"
)

type Server struct {
	e       *echo.Echo
	genRepo repository.GenerationRepository
	sha     string
	build   string
}

func New(cfg *config.Config, sha, buildTime string) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: false,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false, nil
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return false, nil
			}
			if strings.HasSuffix(u.Hostname(), "vercel.app") {
				return true, nil
			}
			return false, nil
		},
	}))

	provider, err := payment.New(cfg.PaymentMode, cfg.PayPalClientID, cfg.PayPalHostedButtonID, cfg.Currency, cfg.PriceKRW)
	if err != nil {
		return nil, err
	}

	imageClient := ai.NewGeminiImageClient(cfg.GeminiAPIKey, cfg.GeminiImageModel, &http.Client{
		Timeout: cfg.GenerateTimeout,
	})
	checkClient := ai.NewPhotoCheckClient(cfg.GeminiAPIKey, cfg.GeminiCheckModel)

	genRepo := repository.NewGenerationRepository(nil)
	genSvc := service.NewGenerationService(imageClient, genRepo, cfg.PaymentMode)

	generateHandler := handler.NewGenerateHandler(genSvc)
	optionsHandler := handler.NewOptionsHandler()
	paymentHandler := handler.NewPaymentConfigHandler(provider)
	precheckHandler := handler.NewPrecheckHandler(checkClient)
	logHandler := handler.NewGenerationLogHandler(genRepo)

	singleFlight := appmw.NewSingleFlight()

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"ok":         "true",
			"git_sha":    sha,
			"build_time": buildTime,
		})
	})

	api := e.Group("/api")
	api.GET("/options", optionsHandler.List)
	api.GET("/config", paymentHandler.Get)
	api.POST("/generate", generateHandler.Generate, singleFlight.Limit)
	api.POST("/precheck", precheckHandler.Check)
	api.GET("/generations/recent", logHandler.ListRecent)

	// Static frontend with SPA fallback; API and health routes bypass it.
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  cfg.StaticDir,
		HTML5: true,
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return strings.HasPrefix(p, "/api") || p == "/healthz"
		},
	}))

	return &Server{e: e, genRepo: genRepo, sha: sha, build: buildTime}, nil
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// SetDB attaches the ledger database after startup; the server runs without
// it until then.
func (s *Server) SetDB(db *gorm.DB) {
	if s.genRepo != nil {
		s.genRepo.SetDB(db)
	}
}
