package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dtroode/recipebox-server/internal/api/rest/handler"
	"github.com/dtroode/recipebox-server/internal/api/rest/middleware"
	"github.com/dtroode/recipebox-server/internal/api/rest/response"
	"github.com/dtroode/recipebox-server/internal/logger"
	"github.com/dtroode/recipebox-server/internal/model"
)

// MaxBodyBytes caps every request body.
const MaxBodyBytes = 1 << 20

// Router represents the HTTP router for recipebox operations.
type Router struct {
	authService    handler.AuthService
	recipeService  handler.RecipeService
	tokenVerifier  middleware.TokenVerifier
	pool           model.Pool
	statements     []string
	contextManager model.ContextManager
	allowedOrigins []string
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
//
// Parameters:
//   - pool: leases one connection per request
//   - statements: session setup run on every leased connection
//   - allowedOrigins: CORS origins; "*" allows any
func New(
	authService handler.AuthService,
	recipeService handler.RecipeService,
	tokenVerifier middleware.TokenVerifier,
	pool model.Pool,
	statements []string,
	contextManager model.ContextManager,
	allowedOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		recipeService:  recipeService,
		tokenVerifier:  tokenVerifier,
		pool:           pool,
		statements:     statements,
		contextManager: contextManager,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Register builds the HTTP handler with all routes and middleware.
func (rt *Router) Register() http.Handler {
	logging := middleware.NewLogging(rt.logger)
	lease := middleware.NewLease(rt.pool, rt.statements, rt.contextManager, rt.logger)
	authenticate := middleware.NewAuthenticate(rt.tokenVerifier, rt.contextManager, rt.logger)
	dispatcher := response.NewDispatcher(rt.logger)

	public := response.Chain(lease.Handle)
	protected := response.Chain(lease.Handle, authenticate.Handle)

	r := chi.NewRouter()
	r.Use(
		chimw.RequestID,
		chimw.RealIP,
		logging.Handle,
		cors.Handler(cors.Options{
			AllowedOrigins: rt.allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}),
		chimw.RequestSize(MaxBodyBytes),
	)

	authHandler := handler.NewAuth(rt.authService, rt.contextManager, rt.logger)
	recipeHandler := handler.NewRecipe(rt.recipeService, rt.contextManager, rt.logger)

	r.Post("/register", dispatcher.Handle(public(authHandler.Register)))
	r.Post("/log-in", dispatcher.Handle(public(authHandler.Login)))

	r.Get("/me", dispatcher.Handle(protected(authHandler.Me)))
	r.Get("/recipes", dispatcher.Handle(protected(recipeHandler.List)))
	r.Put("/save", dispatcher.Handle(protected(recipeHandler.Save)))
	r.Delete("/delete-recipe/{id}", dispatcher.Handle(protected(recipeHandler.Delete)))

	return r
}
