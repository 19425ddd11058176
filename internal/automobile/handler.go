package automobile

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pedropiresdev/c2s-challenge/internal/common/logger"
	"github.com/pedropiresdev/c2s-challenge/internal/errs"
)

const notFoundDetail = "automobile not found"

// Handler exposes the store over REST. Status mapping:
// 201 create, 404 missing id, 204 delete, 409 uniqueness conflict,
// 422 validation/binding failure.
type Handler struct {
	svc *Service
	log logger.Logger
}

func NewHandler(svc *Service, log logger.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Register mounts the CRUD routes on the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}

// CreateRequest is the POST /automobiles body. The binding tags mirror the
// field constraints; plate/chassis patterns are enforced by the domain
// validation behind the service.
type CreateRequest struct {
	Make        string   `json:"make" binding:"required,max=50"`
	Model       string   `json:"model" binding:"required,max=50"`
	Year        int      `json:"year" binding:"required,gte=1900,lte=2100"`
	Color       string   `json:"color" binding:"required,max=30"`
	FuelType    FuelType `json:"fuel_type" binding:"required"`
	Mileage     float64  `json:"mileage" binding:"gte=0"`
	DoorCount   int      `json:"door_count" binding:"required,gte=2,lte=5"`
	Plate       *string  `json:"plate"`
	ChassisCode string   `json:"chassis_code" binding:"required,len=17"`
	FipeCode    string   `json:"fipe_code" binding:"required,min=6,max=10"`
}

func (h *Handler) create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	a, err := h.svc.Create(c.Request.Context(), CreateInput{
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		Color:       req.Color,
		FuelType:    req.FuelType,
		Mileage:     req.Mileage,
		DoorCount:   req.DoorCount,
		Plate:       req.Plate,
		ChassisCode: req.ChassisCode,
		FipeCode:    req.FipeCode,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *Handler) list(c *gin.Context) {
	var f Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	if f.FuelType != nil && !f.FuelType.Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid fuel_type"})
		return
	}

	autos, err := h.svc.List(c.Request.Context(), &f)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, autos)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	a, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if a == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": notFoundDetail})
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var p Patch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	a, err := h.svc.Update(c.Request.Context(), id, &p)
	if err != nil {
		h.fail(c, err)
		return
	}
	if a == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": notFoundDetail})
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"detail": notFoundDetail})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"detail": err.Error()})
	case errors.Is(err, errs.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
	default:
		if h.log != nil {
			h.log.Errorf("automobile handler: %v", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
