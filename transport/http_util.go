package transport

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/npesaras/clens/internal"
)

// RequestURL retrieves entry path of request
func RequestURL(req *http.Request) string {
	path := req.URL.Path
	query := req.URL.Query().Encode()
	url := path
	if len(query) > 0 {
		url = fmt.Sprintf("%s?%s", path, query)
	}
	return url
}

// ParseID reads a positive integer path parameter. entity names the record in
// the error message, ie: "civilian".
func ParseID(c *gin.Context, param string, entity string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "Invalid %s ID", entity)
	}
	return uint(id), nil
}

// Bind decodes the JSON body of the request into v. Validation is left to the
// service that receives v.
func Bind(c *gin.Context, v interface{}) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "%v", errInvalidJSON)
	}
	return nil
}

// Retrieves request ip for logging purposes
func resolveIP(req *http.Request) string {
	real := req.Header.Get("X-Real-Ip")
	if len(real) > 0 {
		return real
	}
	forward := req.Header.Get("X-Forwarded-For")
	if len(forward) > 0 {
		return forward
	}
	return req.RemoteAddr
}
