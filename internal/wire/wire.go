package wire

import (
	"net/http"

	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/storage"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes.
func Wiring(repo *repository.Repository, media storage.MediaStore, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, media, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, media, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	media storage.MediaStore,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigin))

	wireMovie(r, handler.Movie)
	wireComment(r, handler.Comment)
	wireAuth(r, handler.Auth)

	// Posters stored on local disk are served straight from the upload dir.
	// The S3 backend returns absolute object URLs, so no route is needed there.
	if local, ok := media.(*storage.LocalStore); ok {
		fs := http.StripPrefix(storage.PosterURLPrefix, http.FileServer(http.Dir(local.Dir())))
		r.Get(storage.PosterURLPrefix+"*", fs.ServeHTTP)
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
