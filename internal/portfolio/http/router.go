package http

import "github.com/gin-gonic/gin"

// Register registers the portfolio routes under rg (normally /api).
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/projects", h.ListProjects)
	rg.POST("/projects", h.CreateProject)
	rg.GET("/skills", h.ListSkills)
	rg.POST("/skills", h.CreateSkill)
	rg.POST("/contact", h.CreateContact)
}
