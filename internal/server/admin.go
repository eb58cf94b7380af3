package server

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katariya/portfolio/internal/config"
)

const (
	adminCookie       = "admin_token"
	adminCookieMaxAge = 24 * 3600
	devAdminPassword  = "admin123"
	visitorsPageLimit = 200
)

type adminAuth struct {
	token    string
	username string
	password string
}

func newAdminAuth(cfg config.Admin) (*adminAuth, error) {
	token, err := randomToken()
	if err != nil {
		return nil, fmt.Errorf("generate admin token: %w", err)
	}

	a := &adminAuth{token: token, username: cfg.Username, password: cfg.Password}
	if a.password == "" && gin.Mode() == gin.DebugMode {
		log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
		a.password = devAdminPassword
	}

	if a.enabled() {
		log.Printf("Admin access available at: /admin/login")
	} else {
		log.Printf("Admin login disabled: ADMIN_PASSWORD is not set")
	}
	return a, nil
}

func (a *adminAuth) enabled() bool {
	return a.username != "" && a.password != ""
}

func (a *adminAuth) check(username, password string) bool {
	if !a.enabled() {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

func (a *adminAuth) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) adminRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})
	r.POST("/admin/login", s.adminLogin)
	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		log.Printf("Admin logout from %s", s.privacy.hash(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.admin.middleware())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
		})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/visitors", func(c *gin.Context) {
		visitors, err := s.store.RecentVisitors(c.Request.Context(), visitorsPageLimit)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"visitors": visitors,
		})
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		log.Printf("Admin stats exported by %s", s.privacy.hash(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := s.Cleanup(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "deleted": n})
	})
}

func (s *Server) adminLogin(c *gin.Context) {
	if !s.admin.enabled() {
		c.HTML(http.StatusForbidden, "admin-login.html", gin.H{
			"error": "Admin login is disabled",
		})
		return
	}

	if !s.admin.check(c.PostForm("username"), c.PostForm("password")) {
		log.Printf("Failed admin login attempt from %s", s.privacy.hash(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"error": "Invalid credentials",
		})
		return
	}

	c.SetCookie(adminCookie, s.admin.token, adminCookieMaxAge, "/admin", "", false, true)
	log.Printf("Admin login successful from %s", s.privacy.hash(c.ClientIP()))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Cleanup deletes analytics older than the configured retention window.
func (s *Server) Cleanup(ctx context.Context) (int64, error) {
	if s.store == nil {
		return 0, nil
	}
	cutoff := s.now().Add(-s.cfg.Retention)
	n, err := s.store.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Printf("Privacy cleanup: removed %d records older than %s", n, cutoff.Format(time.DateOnly))
	}
	return n, nil
}
