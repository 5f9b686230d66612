package roverapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/beka-birhanu/vinom-rover/rover/grid"
	"github.com/beka-birhanu/vinom-rover/service"
	"github.com/beka-birhanu/vinom-rover/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxGridBodyBytes fits two records of grid.MaxRecordBytes plus line breaks and blank lines.
const maxGridBodyBytes = 2*grid.MaxRecordBytes + 4096

// ExplorationController runs explorations and serves past ones.
type ExplorationController struct {
	explorer i.Explorer
	maxBody  int64
}

// NewExplorationController initializes an ExplorationController.
func NewExplorationController(e i.Explorer) (*ExplorationController, error) {
	if e == nil {
		return nil, errors.New("explorer is required")
	}
	return &ExplorationController{explorer: e, maxBody: maxGridBodyBytes}, nil
}

// RegisterPublic registers public routes.
func (ec *ExplorationController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/explorations", ec.explore)
}

// RegisterProtected registers protected routes.
func (ec *ExplorationController) RegisterProtected(route *gin.RouterGroup) {
	explorations := route.Group("/explorations")
	{
		explorations.GET("/recent", ec.recent)
		explorations.GET("/:ID", ec.byID)
	}
}

// explore runs a traversal over the grid in the request body.
func (ec *ExplorationController) explore(ctx *gin.Context) {
	body := http.MaxBytesReader(ctx.Writer, ctx.Request.Body, ec.maxBody)
	exploration, err := ec.explorer.Explore(ctx.Request.Context(), body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("grid exceeds %d bytes", tooLarge.Limit)})
		case errors.Is(err, grid.ErrMalformed):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, grid.ErrSourceUnavailable):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "could not read request body"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while exploring grid"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, newExplorationResponse(exploration))
}

// byID returns an archived exploration.
func (ec *ExplorationController) byID(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	exploration, err := ec.explorer.ByID(ctx.Request.Context(), ID)
	if err != nil {
		switch {
		case errors.Is(err, i.ErrExplorationNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrArchiveDisabled):
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading exploration"})
		}
		return
	}

	ctx.JSON(http.StatusOK, newExplorationResponse(exploration))
}

// recent lists the IDs of recent explorations.
func (ec *ExplorationController) recent(ctx *gin.Context) {
	var query RecentQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids, err := ec.explorer.Recent(ctx.Request.Context(), query.Limit)
	if err != nil {
		if errors.Is(err, service.ErrRecentDisabled) {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while listing explorations"})
		return
	}

	if ids == nil {
		ids = []uuid.UUID{}
	}
	ctx.JSON(http.StatusOK, &RecentResponse{IDs: ids})
}
