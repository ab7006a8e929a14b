package transport

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/npesaras/clens/civilian"
	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/transport"
)

type Http struct {
	cs civilian.Service
}

func NewCivilianHttp(cs civilian.Service, r gin.IRouter) {
	h := &Http{
		cs: cs,
	}
	group := r.Group("/civilian")
	{
		group.GET("", h.list())
		group.POST("", h.create())
		group.GET("/leaderboard", h.leaderboard())
		group.GET("/user/:userId", h.getByUser())
		group.GET("/:id", h.get())
		group.PUT("/:id", h.update())
		group.DELETE("/:id", h.delete())
	}
}

func (h *Http) list() gin.HandlerFunc {
	return func(c *gin.Context) {
		civilians, err := h.cs.List(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, civilians)
	}
}

func (h *Http) create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload civilian.CreatePayload
		if err := transport.Bind(c, &payload); err != nil {
			c.Error(err)
			return
		}
		created, err := h.cs.Create(c.Request.Context(), payload)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusCreated, created)
	}
}

func (h *Http) get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := transport.ParseID(c, "id", "civilian")
		if err != nil {
			c.Error(err)
			return
		}
		found, err := h.cs.Find(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, found)
	}
}

func (h *Http) leaderboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := civilian.DefaultLeaderboardLimit
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				c.Error(internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "%v", civilian.ErrInvalidLimit))
				return
			}
			limit = parsed
		}
		entries, err := h.cs.Leaderboard(c.Request.Context(), limit)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, entries)
	}
}

func (h *Http) getByUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := transport.ParseID(c, "userId", "user")
		if err != nil {
			c.Error(err)
			return
		}
		found, err := h.cs.FindByUser(c.Request.Context(), userID)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, found)
	}
}

func (h *Http) update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := transport.ParseID(c, "id", "civilian")
		if err != nil {
			c.Error(err)
			return
		}
		var payload civilian.UpdatePayload
		if err := transport.Bind(c, &payload); err != nil {
			c.Error(err)
			return
		}
		updated, err := h.cs.Update(c.Request.Context(), id, payload)
		if err != nil {
			c.Error(err)
			return
		}
		transport.Success(c, http.StatusOK, updated)
	}
}

func (h *Http) delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := transport.ParseID(c, "id", "civilian")
		if err != nil {
			c.Error(err)
			return
		}
		deleted, err := h.cs.Delete(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			return
		}
		transport.SuccessWithMessage(c, http.StatusOK, "Civilian record deleted successfully", deleted)
	}
}
