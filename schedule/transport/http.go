package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/npesaras/clens/schedule"
	"github.com/npesaras/clens/transport"
)

type Http struct {
	ss schedule.Service
}

func NewScheduleHttp(ss schedule.Service, r gin.IRouter) {
	h := &Http{
		ss: ss,
	}
	group := r.Group("/collection-schedules")
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
		schedules, err := h.ss.List(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, schedules)
	}
}

func (h *Http) create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload schedule.CreatePayload
		if err := transport.Bind(c, &payload); err != nil {
			c.Error(err)
			return
		}
		created, err := h.ss.Create(c.Request.Context(), payload)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusCreated, created)
	}
}

func (h *Http) get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := transport.ParseID(c, "id", "collection schedule")
		if err != nil {
			c.Error(err)
			return
		}
		found, err := h.ss.Find(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, found)
	}
}

func (h *Http) update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := transport.ParseID(c, "id", "collection schedule")
		if err != nil {
			c.Error(err)
			return
		}
		var payload schedule.UpdatePayload
		if err := transport.Bind(c, &payload); err != nil {
			c.Error(err)
			return
		}
		updated, err := h.ss.Update(c.Request.Context(), id, payload)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, updated)
	}
}

func (h *Http) delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := transport.ParseID(c, "id", "collection schedule")
		if err != nil {
			c.Error(err)
			return
		}
		deleted, err := h.ss.Delete(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			return
		}
		transport.SuccessWithMessage(c, http.StatusOK, "Collection schedule deleted successfully", deleted)
	}
}
