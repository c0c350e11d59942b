package http

import "github.com/gin-gonic/gin"

// Register attaches wizard routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/steps", h.listStepDefs)
	rg.GET("/project/:projectId/steps", h.listSteps)
	rg.GET("/step/:projectId/:stepNumber", h.getStep)
	rg.POST("/step/:projectId/:stepNumber", h.saveStep)
	rg.POST("/advance/:projectId/:stepNumber", h.advance)
	rg.POST("/generate-prd", h.generatePRD)
	rg.GET("/outputs/:projectId", h.listOutputs)
}
