package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/menu-app/models"
	"github.com/yeremiapane/menu-app/utils"
)

func TestSnapshotMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	signer := utils.NewSnapshotSigner("secret", time.Hour)

	var got models.MenuCollection
	var present bool
	r := gin.New()
	r.GET("/menus", SnapshotMiddleware(signer), func(c *gin.Context) {
		got, present = SnapshotFromContext(c)
		c.Status(http.StatusOK)
	})

	menu := models.MenuCollection{{DishName: "Soup", Price: 4, CourseType: models.CourseStarter}}
	token, err := signer.Sign(menu)
	require.NoError(t, err)

	// header
	req := httptest.NewRequest(http.MethodGet, "/menus", nil)
	req.Header.Set(SnapshotHeader, token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, present)
	assert.Equal(t, menu, got)

	// query
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menus?snapshot="+token, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, present)

	// absent
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menus", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, present)

	// invalid
	req = httptest.NewRequest(http.MethodGet, "/menus", nil)
	req.Header.Set(SnapshotHeader, "not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
