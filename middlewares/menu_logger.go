package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/menu-app/utils"
)

// MenuChangeLogger logs every request that changes the menu and its outcome.
func MenuChangeLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}
		if index := c.Param("index"); index != "" {
			fields["index"] = index
		}

		// Sebelum request
		utils.InfoLogger.WithFields(fields).Debug("Menu change requested")

		c.Next()

		// Setelah request
		fields["status"] = c.Writer.Status()
		if c.Writer.Status() < 400 {
			utils.InfoLogger.WithFields(fields).Info("Menu changed")
		} else {
			utils.InfoLogger.WithFields(fields).Warn("Menu change rejected")
		}
	}
}
