package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-app/models"
	"github.com/yeremiapane/menu-app/utils"
)

const (
	SnapshotHeader     = "X-Menu-Snapshot"
	SnapshotQuery      = "snapshot"
	SnapshotContextKey = "snapshot"
)

// SnapshotMiddleware decodes the handoff token sent by the previous screen and stores
// the collection under SnapshotContextKey. Requests without a token pass through
// untouched; a bad token is rejected.
func SnapshotMiddleware(signer *utils.SnapshotSigner) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader(SnapshotHeader))
		if token == "" {
			token = strings.TrimSpace(c.Query(SnapshotQuery))
		}
		if token == "" {
			c.Next()
			return
		}

		entries, err := signer.Parse(token)
		if err != nil {
			utils.InfoLogger.WithError(err).Warn("Rejected menu snapshot")
			utils.RespondError(c, http.StatusBadRequest, utils.ErrInvalidSnapshot)
			c.Abort()
			return
		}

		c.Set(SnapshotContextKey, entries)
		c.Next()
	}
}

// SnapshotFromContext returns the decoded snapshot and whether one was sent.
func SnapshotFromContext(c *gin.Context) (models.MenuCollection, bool) {
	v, ok := c.Get(SnapshotContextKey)
	if !ok {
		return nil, false
	}
	entries, ok := v.(models.MenuCollection)
	return entries, ok
}
