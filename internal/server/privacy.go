package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/katariya/portfolio/internal/store"
)

// untrackedPrefixes are never recorded as visits. The HTMX fragments are
// requested by an already counted page, so they are skipped too.
var untrackedPrefixes = []string{
	"/contact-form",
	"/projects",
	"/static/",
	"/images/",
	"/admin/",
	"/api/",
	"/metrics",
	"/favicon",
	"/privacy",
	"/resume.pdf",
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// hasher turns client IPs into salted, truncated digests. The salt lives only
// in memory, so hashes are stable per process and unlinkable across restarts.
type hasher struct {
	salt string
}

func (h *hasher) hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func doNotTrack(c *gin.Context) bool {
	return c.GetHeader("DNT") == "1"
}

func tracked(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// visitorTracking records page visits with hashed IPs. Failures are logged and
// never affect the response.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !tracked(path) || doNotTrack(c) {
			c.Next()
			return
		}

		err := s.store.RecordVisit(c.Request.Context(), store.Visit{
			HashedIP:  s.privacy.hash(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: s.now(),
		})
		if err != nil {
			log.Printf("Error recording visitor: %v", err)
		}
		c.Next()
	}
}
