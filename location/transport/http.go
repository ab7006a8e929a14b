package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/npesaras/clens/location"
	"github.com/npesaras/clens/transport"
)

type Http struct {
	ls location.Service
}

func NewLocationHttp(ls location.Service, r gin.IRouter) {
	h := &Http{
		ls: ls,
	}
	group := r.Group("/locations")
	{
		group.GET("", h.list())
		group.POST("", h.create())
		group.GET("/:id", h.get())
		group.PUT("/:id", h.update())
		group.DELETE("/:id", h.delete())
	}
}

func (h *Http) list() gin.HandlerFunc {
	return func(c *gin.Context) {
		locations, err := h.ls.List(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, locations)
	}
}

func (h *Http) create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload location.CreatePayload
		if err := transport.Bind(c, &payload); err != nil {
			c.Error(err)
			return
		}
		created, err := h.ls.Create(c.Request.Context(), payload)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusCreated, created)
	}
}

func (h *Http) get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := transport.ParseID(c, "id", "location")
		if err != nil {
			c.Error(err)
			return
		}
		found, err := h.ls.Find(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, found)
	}
}

func (h *Http) update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := transport.ParseID(c, "id", "location")
		if err != nil {
			c.Error(err)
			return
		}
		var payload location.UpdatePayload
		if err := transport.Bind(c, &payload); err != nil {
			c.Error(err)
			return
		}
		updated, err := h.ls.Update(c.Request.Context(), id, payload)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, updated)
	}
}

func (h *Http) delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := transport.ParseID(c, "id", "location")
		if err != nil {
			c.Error(err)
			return
		}
		deleted, err := h.ls.Delete(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			return
		}
		transport.SuccessWithMessage(c, http.StatusOK, "Location deleted successfully", deleted)
	}
}
