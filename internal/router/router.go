package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/groupstudy/groupstudy-backend/internal/config"
	"github.com/groupstudy/groupstudy-backend/internal/handler"
	"github.com/groupstudy/groupstudy-backend/internal/middleware"
	"github.com/groupstudy/groupstudy-backend/internal/response"
	"github.com/groupstudy/groupstudy-backend/internal/service"
	"github.com/rs/zerolog"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Assignment *handler.AssignmentHandler
	Submission *handler.SubmissionHandler
	Feature    *handler.FeatureHandler
	System     *handler.SystemHandler
}

// Policy is the access rule attached to a route.
type Policy int

const (
	// Public routes run without looking at the credential.
	Public Policy = iota
	// Optional routes attach the caller's claims when a valid credential is present.
	Optional
	// Authenticated routes require a valid, unrevoked credential.
	Authenticated
	// Owner routes additionally require ?email= to name the caller.
	Owner
)

func (p Policy) String() string {
	switch p {
	case Public:
		return "public"
	case Optional:
		return "optional"
	case Authenticated:
		return "authenticated"
	case Owner:
		return "owner"
	}
	return "unknown"
}

type route struct {
	method  string
	path    string
	policy  Policy
	handler gin.HandlerFunc
	extra   []gin.HandlerFunc
}

// routes is the full route table. Mutations are gated unless the deployment
// keeps them open for the legacy front-end.
func routes(h *Handlers, cfg *config.Config) []route {
	mutation, submit := Authenticated, Authenticated
	if cfg.OpenMutationRoutes {
		mutation, submit = Public, Optional
	}
	noStore := []gin.HandlerFunc{middleware.NoStore()}

	return []route{
		// ─── Credential ────────────────────────────────────────────────
		{method: http.MethodPost, path: "/jwt", policy: Public, handler: h.Auth.IssueToken, extra: noStore},
		{method: http.MethodPost, path: "/logout", policy: Public, handler: h.Auth.Logout, extra: noStore},

		// ─── Assignments ───────────────────────────────────────────────
		{method: http.MethodPost, path: "/createAssignment", policy: mutation, handler: h.Assignment.Create},
		{method: http.MethodGet, path: "/assignmentsCount", policy: Public, handler: h.Assignment.Count},
		{method: http.MethodGet, path: "/assignmentsCnt/:difficulty", policy: Public, handler: h.Assignment.ListByDifficulty},
		{method: http.MethodGet, path: "/assignments/:difficulty", policy: Public, handler: h.Assignment.ListPage},
		{method: http.MethodDelete, path: "/deleteAssignment/:id", policy: mutation, handler: h.Assignment.Delete},
		{method: http.MethodGet, path: "/updateAssignment/:id", policy: Authenticated, handler: h.Assignment.Get},
		{method: http.MethodPut, path: "/updateAssignment/:id", policy: mutation, handler: h.Assignment.Update},
		{method: http.MethodGet, path: "/assignmentDetails/:id", policy: Authenticated, handler: h.Assignment.Get},
		{method: http.MethodGet, path: "/assignmentsImages", policy: Public, handler: h.Assignment.ListImages},

		// ─── Submissions ───────────────────────────────────────────────
		{method: http.MethodPost, path: "/submitAssignment", policy: submit, handler: h.Submission.Submit},
		{method: http.MethodGet, path: "/pendingAssignments/:pendingStatus", policy: Authenticated, handler: h.Submission.ListByStatus},
		{method: http.MethodGet, path: "/myAssignments", policy: Owner, handler: h.Submission.ListMine},
		{method: http.MethodGet, path: "/markAssignment/:id", policy: Authenticated, handler: h.Submission.Get},
		{method: http.MethodPatch, path: "/markAssignment/:id", policy: mutation, handler: h.Submission.Grade},
		{method: http.MethodGet, path: "/completedAssignments/:rank", policy: Public, handler: h.Submission.Ranked},

		// ─── Misc ──────────────────────────────────────────────────────
		{method: http.MethodGet, path: "/feature", policy: Public, handler: h.Feature.List},
		{method: http.MethodGet, path: "/", policy: Public, handler: h.System.Root},
		{method: http.MethodGet, path: "/health", policy: Public, handler: h.System.Health},
	}
}

// SetupRouter configures the Gin engine with global middlewares and the
// route table.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// Apply request ID middleware globally so every error carries one.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log.With().Str("component", "http").Logger()))

	// ─── CORS ──────────────────────────────────────────────────────────
	// The credential travels in a cookie, so origins must be explicit.
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = origins
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(middleware.Compress(middleware.CompressConfig{MinLength: cfg.CompressMinBytes}))

	requireAuth := middleware.RequireCookieAuth(authService, log.With().Str("component", "auth").Logger())
	guards := map[Policy][]gin.HandlerFunc{
		Public:        nil,
		Optional:      {middleware.OptionalCookieAuth(authService)},
		Authenticated: {requireAuth},
		Owner:         {requireAuth, middleware.RequireQueryIdentity("email")},
	}

	for _, rt := range routes(handlers, cfg) {
		chain := make([]gin.HandlerFunc, 0, len(guards[rt.policy])+len(rt.extra)+1)
		chain = append(chain, guards[rt.policy]...)
		chain = append(chain, rt.extra...)
		chain = append(chain, rt.handler)
		router.Handle(rt.method, rt.path, chain...)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	return router
}
