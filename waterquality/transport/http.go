package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/npesaras/clens/transport"
	"github.com/npesaras/clens/waterquality"
)

type Http struct {
	ws waterquality.Service
}

func NewWaterQualityHttp(ws waterquality.Service, r gin.IRouter) {
	h := &Http{
		ws: ws,
	}
	group := r.Group("/water-quality-statistics")
	{
		group.GET("", h.list())
		group.POST("", h.create())
		group.GET("/:interval/:startDate", h.get())
		group.PUT("/:interval/:startDate", h.update())
		group.DELETE("/:interval/:startDate", h.delete())
	}
}

func parseKey(c *gin.Context) (waterquality.Key, error) {
	return waterquality.ParseKey(c.Param("interval"), c.Param("startDate"))
}

func (h *Http) list() gin.HandlerFunc {
	return func(c *gin.Context) {
		statistics, err := h.ws.List(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, statistics)
	}
}

func (h *Http) create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload waterquality.CreatePayload
		if err := transport.Bind(c, &payload); err != nil {
			c.Error(err)
			return
		}
		created, err := h.ws.Create(c.Request.Context(), payload)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusCreated, created)
	}
}

func (h *Http) get() gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := parseKey(c)
		if err != nil {
			c.Error(err)
			return
		}
		found, err := h.ws.Find(c.Request.Context(), key)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, found)
	}
}

func (h *Http) update() gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := parseKey(c)
		if err != nil {
			c.Error(err)
			return
		}
		var payload waterquality.UpdatePayload
		if err := transport.Bind(c, &payload); err != nil {
			c.Error(err)
			return
		}
		updated, err := h.ws.Update(c.Request.Context(), key, payload)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, updated)
	}
}

func (h *Http) delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := parseKey(c)
		if err != nil {
			c.Error(err)
			return
		}
		deleted, err := h.ws.Delete(c.Request.Context(), key)
		if err != nil {
			c.Error(err)
			return
		}
		transport.SuccessWithMessage(c, http.StatusOK, "Water quality statistics deleted successfully", deleted)
	}
}
