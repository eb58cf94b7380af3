package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katariya/portfolio/internal/catalog"
	"github.com/katariya/portfolio/internal/mailer"
	"github.com/katariya/portfolio/internal/site"
	"github.com/katariya/portfolio/internal/store"
)

// viewFilter builds the filter for one request. A non-empty tag query is the
// visitor's selection and is reported to metrics and analytics.
func (s *Server) viewFilter(c *gin.Context) *catalog.Filter {
	f := catalog.NewFilter(s.doc.Projects)

	tag := c.Query("tag")
	if tag == "" {
		return f
	}

	f.Subscribe(s.metrics.recordSelection)
	if s.store != nil && !doNotTrack(c) {
		f.Subscribe(func(label string) {
			err := s.store.RecordSelection(c.Request.Context(), store.Selection{
				HashedIP:  s.privacy.hash(c.ClientIP()),
				Tag:       label,
				Timestamp: s.now(),
			})
			if err != nil {
				log.Printf("Error recording filter selection: %v", err)
			}
		})
	}
	f.Set(tag)
	return f
}

// Home page
func (s *Server) index(c *gin.Context) {
	s.metrics.pageViews.WithLabelValues("index").Inc()
	c.HTML(http.StatusOK, "index.html", site.NewPage(s.doc, s.viewFilter(c), site.ServerLinker{}))
}

// HTMX swap target: tag bar plus project grid
func (s *Server) projectsFragment(c *gin.Context) {
	s.metrics.pageViews.WithLabelValues("projects").Inc()
	c.HTML(http.StatusOK, "projects.html", site.NewPage(s.doc, s.viewFilter(c), site.ServerLinker{}))
}

func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contact Me",
	})
}

type contactRequest struct {
	FullName string `form:"fullName" binding:"required,max=200"`
	Email    string `form:"email" binding:"required,email"`
	Message  string `form:"message" binding:"required,max=5000"`
}

func (s *Server) contact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusUnprocessableEntity, "contact-error.html", gin.H{
			"error": "Please fill in your name, a valid email address and a message.",
		})
		return
	}

	err := s.mailer.Send(c.Request.Context(), mailer.Message{
		Name:    req.FullName,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		log.Printf("Error sending contact email: %v", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}

func (s *Server) privacyPolicy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"title":     "Privacy Policy",
		"retention": s.cfg.Retention.String(),
	})
}
