package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"aura/pkg/datemath"
	"aura/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Task domain
	db                  *gorm.DB
	dateMath            *datemath.Parser
	captureRateLimit    int
	defaultUserID       string
	now                 func() time.Time
	shutdownGracePeriod time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Task domain
	DB                  *gorm.DB
	DateMath            *datemath.Parser
	CaptureRateLimit    int    // requests per minute per client, 0 disables
	DefaultUserID       string // used when requests carry no X-User-ID
	Now                 func() time.Time
	ShutdownGracePeriod time.Duration
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.New(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		db:                  cfg.DB,
		dateMath:            cfg.DateMath,
		captureRateLimit:    cfg.CaptureRateLimit,
		defaultUserID:       cfg.DefaultUserID,
		now:                 cfg.Now,
		shutdownGracePeriod: cfg.ShutdownGracePeriod,
	}
	if srv.shutdownGracePeriod <= 0 {
		srv.shutdownGracePeriod = 10 * time.Second
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	return nil
}
