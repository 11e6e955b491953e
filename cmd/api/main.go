package main

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/robfig/cron/v3"

	"vetcrm/internal/config"
	"vetcrm/internal/domain/sqlite"
	"vetcrm/internal/domain/sqlite/repository"
	"vetcrm/internal/http/handler"
	"vetcrm/internal/http/middleware"
	cognitoclient "vetcrm/internal/infrastructure/aws/cognito"
	"vetcrm/internal/infrastructure/aws/storage"
	"vetcrm/internal/infrastructure/googleplaces"
	"vetcrm/internal/infrastructure/scraper"
	"vetcrm/internal/service"
	"vetcrm/internal/service/jobs"
	"vetcrm/internal/utils"
	"vetcrm/internal/utils/validators"
)

func main() {
	cfg, err := config.NewLoadedConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	validate := validator.New()
	registerValidators(validate)

	db, err := sqlite.Init(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to init database: %v", err)
	}

	cogClient, err := cognitoclient.InitCognitoClient(cfg.CognitoRegion, cfg.CognitoClientID, cfg.CognitoPoolID)
	if err != nil {
		log.Fatalf("failed to init cognito client: %v", err)
	}

	if err = utils.InitJWKS(cfg.CognitoRegion, cfg.CognitoPoolID); err != nil {
		log.Fatalf("failed to init JWKS: %v", err)
	}

	// Optional outbound features. Keep the binary booting without them so
	// local setups only need the database.
	var s3Client storage.S3Client
	if cfg.S3Bucket != "" {
		s3Client, err = storage.NewStorageClient(cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			log.Fatalf("failed to init S3 client: %v", err)
		}
	}

	var placesClient service.PlacesClient
	if cfg.HasMapsKey() {
		placesClient = googleplaces.NewClient(cfg.MapsAPIKey)
	}

	// Repositories
	estRepo := repository.NewEstabelecimentoRepository(db)
	visitaRepo := repository.NewVisitaRepository(db)
	contatoRepo := repository.NewContatoRepository(db)
	historicoRepo := repository.NewHistoricoRepository(db)
	placeCacheRepo := repository.NewPlaceCacheRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	estService := service.NewEstabelecimentoService(estRepo, historicoRepo, validate)
	visitaService := service.NewVisitaService(visitaRepo, estRepo, validate)
	contatoService := service.NewContatoService(contatoRepo, estRepo, validate)
	dashboardService := service.NewDashboardService(estRepo)
	placesService := service.NewPlacesService(placesClient, placeCacheRepo)
	scrapeService := service.NewScrapeService(scraper.New())
	fotoService := service.NewFotoService(s3Client, estRepo, validate)
	userService := service.NewUserService(userRepo, validate, cogClient)

	// Handlers
	estRoutes := handler.NewEstabelecimentoDefault(estService, contatoService)
	visitaRoutes := handler.NewVisitaDefault(visitaService)
	dashboardRoutes := handler.NewDashboardDefault(dashboardService)
	placesRoutes := handler.NewPlacesDefault(placesService)
	lookupRoutes := handler.NewLookupDefault(scrapeService, fotoService)
	userRoutes := handler.NewUserDefault(userService)

	scheduler := cron.New()
	if _, err = scheduler.AddJob(jobs.PlaceCacheSchedule, jobs.NewPlaceCacheCleaner(placeCacheRepo)); err != nil {
		log.Fatalf("failed to schedule place cache cleaner: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	e := echo.New()
	e.Use(echomw.CORS())
	e.Use(echomw.BodyLimit("30M"))

	// Public
	e.POST("/api/users/check-email", userRoutes.CheckEmail)
	e.POST("/api/users", userRoutes.CreateUser)
	e.POST("/api/users/login", userRoutes.CreateLogin)
	e.POST("/api/users/confirms", userRoutes.ConfirmSignup)
	e.POST("/api/users/confirms/resend", userRoutes.ResendConfirmation)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	auth := middleware.NewAuthMiddleware(&middleware.AuthMiddlewareConfig{UserRepo: userRepo})
	api := e.Group("/api", auth)

	// Users
	api.GET("/users", userRoutes.GetUsers)
	api.GET("/users/:id", userRoutes.GetUser)
	api.PATCH("/users/:id", userRoutes.UpdateUser)
	api.DELETE("/users/:id", userRoutes.DeleteUser)
	api.POST("/users/logout", userRoutes.CreateLogout)

	// Establishments
	api.GET("/estabelecimentos", estRoutes.GetEstabelecimentos)
	api.GET("/estabelecimentos/:id", estRoutes.GetEstabelecimento)
	api.POST("/estabelecimentos", estRoutes.CreateEstabelecimento)
	api.PATCH("/estabelecimentos/:id", estRoutes.UpdateEstabelecimento)
	api.PATCH("/estabelecimentos/:id/relacionamento", estRoutes.SetRelacionamento)
	api.DELETE("/estabelecimentos/:id", estRoutes.DeleteEstabelecimento)
	api.GET("/estabelecimentos/:id/historico", estRoutes.GetHistorico)
	api.GET("/estabelecimentos/:id/contatos", estRoutes.GetContatos)
	api.POST("/estabelecimentos/:id/contatos", estRoutes.CreateContato)
	api.DELETE("/estabelecimentos/:id/contatos/:contatoId", estRoutes.DeleteContato)

	// Visits
	api.GET("/visitas", visitaRoutes.GetVisitas)
	api.GET("/visitas/:id", visitaRoutes.GetVisita)
	api.POST("/visitas", visitaRoutes.CreateVisita)
	api.PATCH("/visitas/:id", visitaRoutes.UpdateVisita)
	api.DELETE("/visitas/:id", visitaRoutes.DeleteVisita)

	// Dashboard
	api.GET("/dashboard", dashboardRoutes.GetDashboard)

	// Outbound lookups
	api.GET("/places/search", placesRoutes.Search)
	api.GET("/places/:placeId", placesRoutes.Details)
	api.GET("/places/streetview/check", placesRoutes.StreetView)
	api.POST("/lookup/scrape", lookupRoutes.ScrapeLink)
	api.POST("/lookup/foto", lookupRoutes.UploadFoto)

	if err := e.Start(cfg.ListenAddr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("hasupper", validators.HasUpper)
	_ = validate.RegisterValidation("haslower", validators.HasLower)
	_ = validate.RegisterValidation("hasdigit", validators.HasDigit)
	_ = validate.RegisterValidation("hasspecial", validators.HasSpecial)
	_ = validate.RegisterValidation("nodupes", validators.NoDupes)
	_ = validate.RegisterValidation("nospaces", validators.NoWhiteSpaces)
}

func healthCheckRoute(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
