package router

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"app/internal/api/v1/handler"
	"app/internal/config"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/service"
	"app/internal/video"

	"github.com/go-playground/validator/v10"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/swaggo/swag"
)

func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *sql.DB, error) {
	logger.Info().Str("environment", cfg.Environment).Msg("App environment loaded")

	// In a development environment, ensure SSL is disabled for local
	// testing. In production, the connection string should be provided
	// with the correct SSL settings.
	dsn := cfg.DBConnectionString
	if cfg.Environment == "development" && !strings.Contains(dsn, "sslmode") {
		separator := " "
		if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
			if strings.Contains(dsn, "?") {
				separator = "&"
			} else {
				separator = "?"
			}
		}
		dsn += separator + "sslmode=disable"
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to open DB connection")
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		logger.Error().Err(err).Msg("Failed to ping DB")
		return nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)

	validate := validator.New(validator.WithRequiredStructEnabled())
	// A URL on a YouTube host must carry an extractable 11-character
	// video ID; anything else would be stored but never embeddable.
	if err := validate.RegisterValidation("youtube_url", func(fl validator.FieldLevel) bool {
		raw := fl.Field().String()
		if !video.IsYouTube(raw) {
			return true
		}
		_, ok := video.YouTubeID(raw)
		return ok
	}); err != nil {
		return nil, nil, err
	}

	userRepo := repository.NewUserRepo(db)
	courseRepo := repository.NewCourseRepo(db)
	lessonRepo := repository.NewLessonRepo(db)
	enrollmentRepo := repository.NewEnrollmentRepo(db)
	progressRepo := repository.NewProgressRepo(db)

	userSvc := service.NewUserService(userRepo, cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	courseSvc := service.NewCourseService(courseRepo)
	lessonSvc := service.NewLessonService(lessonRepo, courseRepo)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, courseRepo)
	progressSvc := service.NewProgressService(progressRepo)

	const apiBasePath = "/v1"

	userHandler := handler.NewUserHandler(userSvc, validate, logger)
	courseHandler := handler.NewCourseHandler(courseSvc, lessonSvc, enrollmentSvc, progressSvc, apiBasePath, logger)
	manageHandler := handler.NewManageHandler(courseSvc, lessonSvc, validate, logger)

	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret)
	optionalAuthMiddleware := middleware.OptionalAuthMiddleware(cfg.JWTSecret)
	staffMiddleware := func(next http.Handler) http.Handler {
		return authMiddleware(middleware.StaffMiddleware()(next))
	}

	mux := http.NewServeMux()

	apiV1Mux := http.NewServeMux()
	userHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	courseHandler.RegisterRoutes(apiV1Mux, optionalAuthMiddleware, authMiddleware)
	manageHandler.RegisterRoutes(apiV1Mux, staffMiddleware)

	mux.Handle(apiBasePath+"/", http.StripPrefix(apiBasePath, apiV1Mux))

	mux.HandleFunc("/swagger/swagger.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, "Failed to read swagger doc", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(c.Handler(mux)), db, nil
}
