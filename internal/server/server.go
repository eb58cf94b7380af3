package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katariya/portfolio/internal/config"
	"github.com/katariya/portfolio/internal/mailer"
	"github.com/katariya/portfolio/internal/site"
	"github.com/katariya/portfolio/internal/store"
)

const shutdownTimeout = 5 * time.Second

// Options are the dependencies of a Server. Config, Document and Mailer are
// required; Store may be nil, which disables visitor tracking and the admin area.
type Options struct {
	Config   *config.Config
	Document *site.Document
	Store    store.Store
	Mailer   mailer.Sender
}

// Server serves the portfolio page, its JSON API and the admin dashboard.
type Server struct {
	cfg     *config.Config
	doc     *site.Document
	store   store.Store
	mailer  mailer.Sender
	metrics *metrics
	privacy *hasher
	admin   *adminAuth
	now     func() time.Time
	engine  *gin.Engine
}

// New builds a Server and its routes.
func New(opts Options) (*Server, error) {
	if opts.Config == nil || opts.Document == nil || opts.Mailer == nil {
		return nil, errors.New("server: config, document and mailer are required")
	}

	tmpl, err := site.Templates()
	if err != nil {
		return nil, err
	}

	salt, err := randomToken()
	if err != nil {
		return nil, fmt.Errorf("generate hashing salt: %w", err)
	}

	s := &Server{
		cfg:     opts.Config,
		doc:     opts.Document,
		store:   opts.Store,
		mailer:  opts.Mailer,
		metrics: newMetrics(opts.Document.Projects),
		privacy: &hasher{salt: salt},
		now:     time.Now,
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())
	engine.SetHTMLTemplate(tmpl)
	s.engine = engine

	if s.store != nil {
		if s.admin, err = newAdminAuth(opts.Config.Admin); err != nil {
			return nil, err
		}
		engine.Use(s.visitorTracking())
		log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")
	}

	s.routes()
	return s, nil
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.engine
}

func (s *Server) routes() {
	r := s.engine

	r.Static("/static", s.cfg.StaticDir)
	r.Static("/images", filepath.Join(s.cfg.StaticDir, "images"))
	if p := s.doc.Profile.ResumePath; strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "/static/") {
		r.StaticFile(p, filepath.Join(s.cfg.StaticDir, path.Base(p)))
	}

	r.GET("/", s.index)
	r.GET("/projects", s.projectsFragment)
	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.contact)
	r.GET("/privacy", s.privacyPolicy)
	r.GET("/metrics", gin.WrapH(s.metrics.handler()))

	api := r.Group("/api")
	api.GET("/tags", s.listTags)
	api.GET("/projects", s.listProjects)
	api.GET("/projects/:id", s.getProject)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if s.store != nil {
		s.adminRoutes(r)
	}
}

// Run serves on the configured address until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Println("Server stopped")
	return nil
}
