package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/askfold/askfold/internal/board/service"
	"github.com/askfold/askfold/internal/board/store"
	"github.com/askfold/askfold/pkg/httpx"
	"github.com/askfold/askfold/pkg/jwtx"
	"github.com/askfold/askfold/pkg/slogx"

	_ "github.com/askfold/askfold/api/board" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	buildVersion string
	assetsDir    string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	AuthService     *service.AuthService
	IdentityService *service.IdentityService
	UserService     *service.UserService
	ContentService  *service.ContentService
	RatingService   *service.RatingService
}

func NewRouter(
	keys *jwtx.KeySet,
	buildVersion, assetsDir string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		buildVersion: buildVersion,
		assetsDir:    assetsDir,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerContent()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.Handle("GET /", AssetsHandler(r.assetsDir))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			AskFold Q&A Board API
//	@version		0.1.0
//	@description	A small question-and-answer board: accounts, bearer-token auth,
//	@description	questions, answers, likes, and search. Tokens are EdDSA-signed JWTs
//	@description	verifiable via the JWKS endpoint.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	r.Mux.Handle("POST /v1/register", &RegisterHandler{AuthService: r.AuthService})
	r.Mux.Handle("POST /v1/login", &LoginHandler{AuthService: r.AuthService})
}

func (r *Router) registerUsers() {
	h := &ProfileHandler{UserService: r.UserService}

	r.Mux.Handle("GET /v1/users/me",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			AuthnMiddleware(r.IdentityService),
		),
	)
	r.Mux.Handle("PUT /v1/users/me/profile",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			AuthnMiddleware(r.IdentityService),
		),
	)
}

func (r *Router) registerContent() {
	questions := &QuestionsHandler{ContentService: r.ContentService}

	// Read endpoints are public.
	r.Mux.Handle("GET /v1/questions", http.HandlerFunc(questions.HandleList))
	r.Mux.Handle("GET /v1/questions/expanded", http.HandlerFunc(questions.HandleListExpanded))
	r.Mux.Handle("GET /v1/search", &SearchHandler{ContentService: r.ContentService})

	// Writes require a valid token.
	r.Mux.Handle("POST /v1/questions",
		httpx.Chain(http.HandlerFunc(questions.HandleCreate),
			AuthnMiddleware(r.IdentityService),
		),
	)
	r.Mux.Handle("POST /v1/answers",
		httpx.Chain(&AnswersHandler{ContentService: r.ContentService},
			AuthnMiddleware(r.IdentityService),
		),
	)
	r.Mux.Handle("POST /v1/ratings",
		httpx.Chain(&RatingsHandler{RatingService: r.RatingService},
			AuthnMiddleware(r.IdentityService),
		),
	)
}

func (r *Router) registerAdmin() {
	questions := &QuestionsHandler{ContentService: r.ContentService}

	// Admin check sits inside authn: 401 without a valid token, 403 with a
	// member token.
	r.Mux.Handle("DELETE /v1/admin/questions/{id}",
		httpx.Chain(http.HandlerFunc(questions.HandleDelete),
			AuthnMiddleware(r.IdentityService),
			RequireAdmin(r.IdentityService),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys))
	r.Mux.Handle("GET /.well-known/jwks.json", JWKSHandler(r.keys))
}
