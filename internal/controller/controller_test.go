package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	appcontext "github.com/InnovativeSphere/jewel-dashboard/internal/app_context"
	"github.com/InnovativeSphere/jewel-dashboard/internal/auth"
	"github.com/InnovativeSphere/jewel-dashboard/internal/config"
	"github.com/InnovativeSphere/jewel-dashboard/internal/constant"
	"github.com/InnovativeSphere/jewel-dashboard/internal/controller"
	"github.com/InnovativeSphere/jewel-dashboard/internal/middleware"
	"github.com/InnovativeSphere/jewel-dashboard/internal/model"
	"github.com/InnovativeSphere/jewel-dashboard/internal/ratelimiter"
	"github.com/InnovativeSphere/jewel-dashboard/internal/repository"
	"github.com/InnovativeSphere/jewel-dashboard/internal/route"
	"github.com/InnovativeSphere/jewel-dashboard/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// envelope mirrors util.Response for decoding in assertions.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	router *gin.Engine
	repo   *repository.Repository
	jwt    auth.JWTInterface
}

// newTestServer wires the full router against an in-memory SQLite database,
// with the rate limiter disabled.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("strNotEmpty", util.StrNotEmpty)
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Project{},
		&model.Donation{},
		&model.Person{},
		&model.ProjectImage{},
		&model.ProjectPerson{},
		&model.Partner{},
		&model.User{},
	))

	cfg := config.Config{
		ENV:  "development",
		Auth: config.AuthConfig{JWT_SECRET: "test-secret"},
	}
	logger := util.NewLogger(cfg.ENV)
	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger, jwtService)
	app := appcontext.Application{
		Config:     &cfg,
		Logger:     logger,
		Repository: repo,
		JWTService: jwtService,
	}

	limiter := ratelimiter.NewRateLimiter(config.RateLimiterConfig{Enabled: false}, logger)
	m := middleware.NewMiddleware(&app, limiter)

	r := gin.New()
	r.Use(m.RequestIDMiddleware)
	r.Use(m.RateLimiterMiddleware)

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(ctx *gin.Context) {
		ctx.Header("Allow", "GET, POST, PUT, DELETE")
		util.ResponseFailed(ctx, http.StatusMethodNotAllowed, "Method "+ctx.Request.Method+" Not Allowed", nil, nil)
	})

	c := controller.NewController(&app)

	r.GET("/", c.Index.Index)

	api := r.Group("/api")
	route.Projects(api, c.Project, m)
	route.Donations(api, c.Donation, m)
	route.People(api, c.Person, m)
	route.ProjectImages(api, c.ProjectImage, m)
	route.ProjectPeople(api, c.ProjectPerson, m)
	route.Partners(api, c.Partner, m)
	route.Users(api, c.User, m)

	return &testServer{router: r, repo: repo, jwt: jwtService}
}

// token returns a valid bearer token for an admin identity.
func (s *testServer) token(t *testing.T) string {
	t.Helper()

	token, err := s.jwt.GenerateToken(auth.JWTPayload{
		ID:    1,
		Email: "admin@example.org",
		Role:  constant.RoleAdmin,
	})
	require.NoError(t, err)
	return token
}

// do sends a JSON request and decodes the response envelope. An empty token
// leaves the Authorization header unset.
func (s *testServer) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var resp envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}

	return rec, resp
}
