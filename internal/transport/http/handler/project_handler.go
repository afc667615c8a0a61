package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"otigox-task/internal/service"
)

type ProjectHandler struct {
	svc *service.ProjectService
	log *zap.Logger
}

func NewProjectHandler(svc *service.ProjectService, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: log}
}

func (h *ProjectHandler) Mount(g *gin.RouterGroup) {
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.GET("/findbyname/:name", h.findByName)
	g.PUT("/:id", h.update)
	g.PUT("/assign/:projectId/:userId", h.assign)
	g.PUT("/remove/:projectId/:userId", h.remove)
	g.DELETE("/:id", h.delete)
}

type createProjectReq struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

func (h *ProjectHandler) create(c *gin.Context) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, h.log, bindErr(err))
		return
	}
	p, err := h.svc.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProjectHandler) get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) list(c *gin.Context) {
	page, size := pageQuery(c)
	projects, err := h.svc.List(c.Request.Context(), page, size)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) findByName(c *gin.Context) {
	p, err := h.svc.FindByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// update merges name/description when present and never touches the
// assignment set.
type updateProjectReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *ProjectHandler) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, h.log, bindErr(err))
		return
	}
	p, err := h.svc.Update(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) assign(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	if err := h.svc.Assign(c.Request.Context(), projectID, userID); err != nil {
		fail(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) remove(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	if err := h.svc.Remove(c.Request.Context(), projectID, userID); err != nil {
		fail(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
