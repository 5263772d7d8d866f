package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nimbuswallet/walletdash-backend/internal/bridge"
)

// NameHandler resolves registered names to their owning addresses.
type NameHandler struct {
	resolver NameResolver
}

// NewNameHandler creates a new NameHandler
func NewNameHandler(resolver NameResolver) *NameHandler {
	return &NameHandler{resolver: resolver}
}

// Get resolves a name
// GET /api/v1/names/:name
func (h *NameHandler) Get(c *gin.Context) {
	name := c.Param("name")

	owner, found, err := h.resolver.NameData(c.Request.Context(), name)
	if err != nil {
		status := http.StatusBadGateway
		if bridge.IsService(err) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "name not registered"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":  name,
		"owner": owner,
	})
}
