package handlers

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

var routableMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// registerMethodNotAllowed answers every other method on path with 405 and an Allow header.
// OPTIONS is left to the CORS middleware.
func registerMethodNotAllowed(rg *gin.RouterGroup, path string, allowed ...string) {
	allow := strings.Join(allowed, ", ")
	handler := func(c *gin.Context) {
		c.Header("Allow", allow)
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	}
	for _, method := range routableMethods {
		if !slices.Contains(allowed, method) {
			rg.Handle(method, path, handler)
		}
	}
}
