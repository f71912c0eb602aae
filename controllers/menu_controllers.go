package controllers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-app/middlewares"
	"github.com/yeremiapane/menu-app/models"
	"github.com/yeremiapane/menu-app/services"
	"github.com/yeremiapane/menu-app/utils"
)

var errInvalidPrice = errors.New("invalid price")

// MenuController serves the Home and Add Menu screens. It keeps no session state:
// the current menu arrives as a snapshot token and leaves as a new one.
type MenuController struct {
	Seed   services.StoreConfig
	View   *services.MenuView
	Signer *utils.SnapshotSigner
}

func NewMenuController(seed services.StoreConfig, view *services.MenuView, signer *utils.SnapshotSigner) *MenuController {
	return &MenuController{Seed: seed, View: view, Signer: signer}
}

// currentStore resolves the session menu. A token in the body wins over the one the
// middleware decoded; with neither, the session starts from the configured seed.
func (mc *MenuController) currentStore(c *gin.Context, bodyToken string) (services.MenuStore, error) {
	if bodyToken = strings.TrimSpace(bodyToken); bodyToken != "" {
		entries, err := mc.Signer.Parse(bodyToken)
		if err != nil {
			return services.MenuStore{}, err
		}
		return services.StoreFromSnapshot(entries), nil
	}
	if entries, ok := middlewares.SnapshotFromContext(c); ok {
		return services.StoreFromSnapshot(entries), nil
	}
	return services.NewMenuStore(mc.Seed), nil
}

func (mc *MenuController) signSnapshot(c *gin.Context, store services.MenuStore) (string, bool) {
	token, err := mc.Signer.Sign(store.Snapshot())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return "", false
	}
	c.Header(middlewares.SnapshotHeader, token)
	return token, true
}

// parseCourseQuery reads ?course=. An empty value means no filter unless required.
func parseCourseQuery(c *gin.Context, required bool) (*models.CourseType, error) {
	label := c.Query("course")
	if label == "" {
		if required {
			return nil, errors.New("query parameter 'course' is required")
		}
		return nil, nil
	}
	course, err := models.ParseCourse(label)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// GetAllMenus renders the Home screen, optionally filtered by ?course=.
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	course, err := parseCourseQuery(c, false)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	store, err := mc.currentStore(c, "")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	token, ok := mc.signSnapshot(c, store)
	if !ok {
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of menus", gin.H{
		"menu":     mc.View.Project(store.Snapshot(), course),
		"snapshot": token,
	})
}

// GetMenuByCourse
// Endpoint: GET /menus/by-course?course=<label>
func (mc *MenuController) GetMenuByCourse(c *gin.Context) {
	course, err := parseCourseQuery(c, true)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	store, err := mc.currentStore(c, "")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	token, ok := mc.signSnapshot(c, store)
	if !ok {
		return
	}

	entries := services.FilterByCourse(store.Snapshot(), course)
	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("List of menus for course: %s", *course), gin.H{
		"entries":  entries,
		"count":    services.Count(entries),
		"snapshot": token,
	})
}

// GetMenuSummary returns the averages and one dish per course, regardless of the view config.
func (mc *MenuController) GetMenuSummary(c *gin.Context) {
	store, err := mc.currentStore(c, "")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	token, ok := mc.signSnapshot(c, store)
	if !ok {
		return
	}

	entries := store.Snapshot()
	utils.RespondJSON(c, http.StatusOK, "Menu summary", gin.H{
		"count":             services.Count(entries),
		"average_price":     services.AveragePrice(entries),
		"average_by_course": services.AveragePriceByCourse(entries),
		"representatives":   services.Representatives(entries),
		"courses":           models.Courses(),
		"snapshot":          token,
	})
}

// GetRepresentative returns the first dish of ?course=.
func (mc *MenuController) GetRepresentative(c *gin.Context) {
	course, err := parseCourseQuery(c, true)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	store, err := mc.currentStore(c, "")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	entry, found := services.FindOneByCourse(store.Snapshot(), *course)
	if !found {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("no menu for course: %s", *course))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu detail", entry)
}

type createMenuRequest struct {
	DishName    string `json:"dish_name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	CourseType  string `json:"course_type"`
	Snapshot    string `json:"snapshot"`
}

// parsePrice validates the raw text from the price field before it reaches the store.
func parsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: price is required", errInvalidPrice)
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("%w: %q", errInvalidPrice, raw)
	}
	return price, nil
}

// CreateMenu handles the Add Menu screen submit.
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var body createMenuRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	price, err := parsePrice(body.Price)
	if err != nil {
		utils.RecordMenuOperation("add", "invalid_price")
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	entry, err := models.NewMenuEntry(body.DishName, body.Description, price, body.CourseType)
	if err != nil {
		utils.RecordMenuOperation("add", "invalid_entry")
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	store, err := mc.currentStore(c, body.Snapshot)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	store = store.Add(entry)
	token, ok := mc.signSnapshot(c, store)
	if !ok {
		return
	}
	utils.RecordMenuOperation("add", "ok")

	utils.RespondJSON(c, http.StatusCreated, "Menu created", gin.H{
		"entry":    entry,
		"index":    store.Len() - 1,
		"menu":     mc.View.Project(store.Snapshot(), nil),
		"snapshot": token,
	})
}

// DeleteMenu removes the dish at :index of the current snapshot.
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu index"))
		return
	}

	store, err := mc.currentStore(c, "")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	before := store.Snapshot()
	store, err = store.RemoveAt(index)
	if err != nil {
		if errors.Is(err, services.ErrIndexOutOfRange) {
			utils.RecordMenuOperation("remove", "out_of_range")
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	token, ok := mc.signSnapshot(c, store)
	if !ok {
		return
	}
	utils.RecordMenuOperation("remove", "ok")

	utils.RespondJSON(c, http.StatusOK, "Menu deleted", gin.H{
		"index":    index,
		"removed":  before[index],
		"menu":     mc.View.Project(store.Snapshot(), nil),
		"snapshot": token,
	})
}

// ClearMenus resets the session to an empty menu.
func (mc *MenuController) ClearMenus(c *gin.Context) {
	store, err := mc.currentStore(c, "")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	store = store.Clear()
	token, ok := mc.signSnapshot(c, store)
	if !ok {
		return
	}
	utils.RecordMenuOperation("clear", "ok")

	utils.RespondJSON(c, http.StatusOK, "Menu cleared", gin.H{
		"menu":     mc.View.Project(store.Snapshot(), nil),
		"snapshot": token,
	})
}
