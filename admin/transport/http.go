package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/npesaras/clens/admin"
	"github.com/npesaras/clens/transport"
)

type Http struct {
	as admin.Service
}

func NewAdminHttp(as admin.Service, r gin.IRouter) {
	h := &Http{
		as: as,
	}
	group := r.Group("/admin")
	{
		group.GET("", h.list())
		group.POST("", h.create())
		group.GET("/user/:userId", h.getByUser())
		group.GET("/:id", h.get())
		group.PUT("/:id", h.update())
		group.DELETE("/:id", h.delete())
	}
}

func (h *Http) list() gin.HandlerFunc {
	return func(c *gin.Context) {
		admins, err := h.as.List(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, admins)
	}
}

func (h *Http) create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload admin.CreatePayload
		if err := transport.Bind(c, &payload); err != nil {
			c.Error(err)
			return
		}
		created, err := h.as.Create(c.Request.Context(), payload)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusCreated, created)
	}
}

func (h *Http) get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := transport.ParseID(c, "id", "admin")
		if err != nil {
			c.Error(err)
			return
		}
		found, err := h.as.Find(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, found)
	}
}

func (h *Http) getByUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := transport.ParseID(c, "userId", "user")
		if err != nil {
			c.Error(err)
			return
		}
		found, err := h.as.FindByUser(c.Request.Context(), userID)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, found)
	}
}

func (h *Http) update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := transport.ParseID(c, "id", "admin")
		if err != nil {
			c.Error(err)
			return
		}
		var payload admin.UpdatePayload
		if err := transport.Bind(c, &payload); err != nil {
			c.Error(err)
			return
		}
		updated, err := h.as.Update(c.Request.Context(), id, payload)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, updated)
	}
}

func (h *Http) delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := transport.ParseID(c, "id", "admin")
		if err != nil {
			c.Error(err)
			return
		}
		deleted, err := h.as.Delete(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			return
		}
		transport.SuccessWithMessage(c, http.StatusOK, "Admin record deleted successfully", deleted)
	}
}
