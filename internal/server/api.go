package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/katariya/portfolio/internal/catalog"
)

// listTags handles GET /api/tags
func (s *Server) listTags(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.AvailableTags(s.doc.Projects))
}

// listProjects handles GET /api/projects?tag=
func (s *Server) listProjects(c *gin.Context) {
	tag := c.Query("tag")
	if tag == "" {
		tag = catalog.All
	}
	c.JSON(http.StatusOK, catalog.VisibleProjects(s.doc.Projects, tag))
}

// getProject handles GET /api/projects/:id
func (s *Server) getProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	project, ok := catalog.ByID(s.doc.Projects, id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}
