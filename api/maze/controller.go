package mazeapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/beka-birhanu/mazegen-api/maze"
	"github.com/beka-birhanu/mazegen-api/service"
	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const renderTimeout = 5 * time.Second

// Controller manages maze generation and retrieval over HTTP.
type Controller struct {
	mazeService i.MazeService
}

// NewController initializes a maze Controller.
func NewController(ms i.MazeService) (*Controller, error) {
	if ms == nil {
		return nil, errors.New("mazeapi: controller needs a maze service")
	}
	return &Controller{
		mazeService: ms,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *Controller) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID", mc.mazeInfo)
		mazes.GET("/:ID/image", mc.mazeImage)
	}
}

// RegisterProtected registers protected routes.
func (mc *Controller) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.create)
	}
}

// create handles maze generation requests.
func (mc *Controller) create(ctx *gin.Context) {
	var request CreateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.mazeService.Create(request.Width, request.Height, request.Algorithm, request.Seed)
	if err != nil {
		if errors.Is(err, maze.ErrUnsupportedAlgorithm) ||
			errors.Is(err, maze.ErrInvalidDimension) ||
			errors.Is(err, service.ErrDimensionTooLarge) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, mazeResponseFrom(record))
}

// mazeInfo retrieves the stored parameters of a maze.
func (mc *Controller) mazeInfo(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	record, err := mc.mazeService.ByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no maze"})
		return
	}

	ctx.JSON(http.StatusOK, mazeResponseFrom(record))
}

// mazeImage streams the rendered PNG of a maze.
func (mc *Controller) mazeImage(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, renderTimeout)
	defer cancel()
	data, err := mc.mazeService.PNG(timeoutCtx, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no maze"})
		return
	}

	ctx.Data(http.StatusOK, "image/png", data)
}
