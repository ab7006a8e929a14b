package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/npesaras/clens/reward"
	"github.com/npesaras/clens/transport"
)

type Http struct {
	rs reward.Service
}

func NewRewardHttp(rs reward.Service, r gin.IRouter) {
	h := &Http{
		rs: rs,
	}
	group := r.Group("/reward-multipliers")
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
		multipliers, err := h.rs.List(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, multipliers)
	}
}

func (h *Http) create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload reward.CreatePayload
		if err := transport.Bind(c, &payload); err != nil {
			c.Error(err)
			return
		}
		created, err := h.rs.Create(c.Request.Context(), payload)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusCreated, created)
	}
}

func (h *Http) get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := transport.ParseID(c, "id", "reward multiplier")
		if err != nil {
			c.Error(err)
			return
		}
		found, err := h.rs.Find(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, found)
	}
}

func (h *Http) update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := transport.ParseID(c, "id", "reward multiplier")
		if err != nil {
			c.Error(err)
			return
		}
		var payload reward.UpdatePayload
		if err := transport.Bind(c, &payload); err != nil {
			c.Error(err)
			return
		}
		updated, err := h.rs.Update(c.Request.Context(), id, payload)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, updated)
	}
}

func (h *Http) delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := transport.ParseID(c, "id", "reward multiplier")
		if err != nil {
			c.Error(err)
			return
		}
		deleted, err := h.rs.Delete(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			return
		}
		transport.SuccessWithMessage(c, http.StatusOK, "Reward multiplier deleted successfully", deleted)
	}
}
