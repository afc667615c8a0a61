package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"otigox-task/internal/service"
)

type UserHandler struct {
	svc *service.UserService
	log *zap.Logger
}

func NewUserHandler(svc *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

func (h *UserHandler) Mount(g *gin.RouterGroup) {
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.GET("/findbyname/:name", h.findByName)
	g.GET("/findbyemail/:email", h.findByEmail)
	g.GET("/search/findbynameandemail", h.findByNameAndEmail)
	g.PUT("/:id", h.replace)
	g.PATCH("/:id", h.patch)
	g.DELETE("/:id", h.delete)
}

type createUserReq struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
}

func (h *UserHandler) create(c *gin.Context) {
	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, h.log, bindErr(err))
		return
	}
	u, err := h.svc.Create(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *UserHandler) get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	u, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) list(c *gin.Context) {
	page, size := pageQuery(c)
	users, err := h.svc.List(c.Request.Context(), page, size)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) findByName(c *gin.Context) {
	page, size := pageQuery(c)
	users, err := h.svc.FindByName(c.Request.Context(), c.Param("name"), page, size)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) findByEmail(c *gin.Context) {
	u, err := h.svc.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) findByNameAndEmail(c *gin.Context) {
	users, err := h.svc.FindByNameAndEmail(c.Request.Context(), c.Query("name"), c.Query("email"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// replace is a full overwrite: fields omitted from the payload are wiped,
// unlike patch.
type replaceUserReq struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
}

func (h *UserHandler) replace(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req replaceUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, h.log, bindErr(err))
		return
	}
	u, err := h.svc.Replace(c.Request.Context(), id, req.Name, req.Email)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type patchUserReq struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

func (h *UserHandler) patch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req patchUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, h.log, bindErr(err))
		return
	}
	u, err := h.svc.Patch(c.Request.Context(), id, req.Name, req.Email)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) delete(c *gin.Context) {
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
