package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/npesaras/clens/address"
	"github.com/npesaras/clens/transport"
)

type Http struct {
	as address.Service
}

func NewAddressHttp(as address.Service, r gin.IRouter) {
	h := &Http{
		as: as,
	}
	group := r.Group("/address")
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
		addresses, err := h.as.List(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, addresses)
	}
}

func (h *Http) create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload address.CreatePayload
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
		id, err := transport.ParseID(c, "id", "address")
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

func (h *Http) update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := transport.ParseID(c, "id", "address")
		if err != nil {
			c.Error(err)
			return
		}
		var payload address.UpdatePayload
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
		id, err := transport.ParseID(c, "id", "address")
		if err != nil {
			c.Error(err)
			return
		}
		deleted, err := h.as.Delete(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			return
		}
		transport.SuccessWithMessage(c, http.StatusOK, "Address deleted successfully", deleted)
	}
}
