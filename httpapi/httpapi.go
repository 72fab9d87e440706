// Package httpapi exposes the solver over HTTP for board UIs: a single
// POST /solve endpoint that accepts a board, runs a catalog preset, and
// returns the move list plus the usual search metrics.
//
// The handler owns no state; every request builds a fresh problem and
// algorithm, which the core's resource model makes safe to serve
// concurrently.
package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/searchkit/bench"
	"github.com/katalvlaran/searchkit/core"
	"github.com/katalvlaran/searchkit/puzzle"
)

// SolveRequest is the JSON body of POST /solve. State is the row-major
// board with 0 for the blank; Algorithm names a bench catalog preset and
// defaults to "astar_manhattan". Seed feeds stochastic presets.
type SolveRequest struct {
	Size      int    `json:"size" binding:"required,min=2"`
	State     []int  `json:"state" binding:"required"`
	Algorithm string `json:"algorithm"`
	Seed      int64  `json:"seed"`
}

// SolveResponse mirrors the core Result record plus the rendered move list.
type SolveResponse struct {
	Success        bool     `json:"success"`
	Moves          []string `json:"moves"`
	Cost           float64  `json:"cost"`
	NodesExpanded  int      `json:"nodes_expanded"`
	RuntimeSeconds float64  `json:"runtime_seconds"`
	Iterations     int      `json:"iterations"`
}

// NewRouter builds the gin engine with the solve route mounted. A nil
// logger falls back to slog.Default().
func NewRouter(logger *slog.Logger) *gin.Engine {
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.POST("/solve", solveHandler(logger))

	return router
}

// solveHandler decodes the request, runs the preset, and renders the result.
// Malformed boards and unknown presets are 400s; solver failures within a
// resource bound are a normal 200 with success=false.
func solveHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SolveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

			return
		}

		state, err := puzzle.FromTiles(req.State)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

			return
		}

		problem, err := puzzle.New(req.Size, state, "")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

			return
		}

		preset := req.Algorithm
		if preset == "" {
			preset = "astar_manhattan"
		}

		algorithm, err := bench.Build(preset, problem, req.Seed)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

			return
		}

		agent, err := core.NewAgent[puzzle.State, puzzle.Action](problem, algorithm)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

			return
		}

		res, err := agent.Solve()
		if err != nil {
			// Contract violations inside the domain are server-side bugs,
			// not client errors.
			if errors.Is(err, core.ErrInvalidAction) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

			return
		}

		moves := []string{}
		if res.Solution != nil {
			for _, a := range res.Solution.Actions() {
				moves = append(moves, string(a))
			}
		}

		logger.Info("solve request served",
			slog.String("algorithm", preset),
			slog.Int("size", req.Size),
			slog.Bool("success", res.Success),
			slog.Int("nodes_expanded", res.NodesExpanded),
			slog.Duration("runtime", res.Runtime),
		)

		c.JSON(http.StatusOK, SolveResponse{
			Success:        res.Success,
			Moves:          moves,
			Cost:           jsonCost(res.Cost()),
			NodesExpanded:  res.NodesExpanded,
			RuntimeSeconds: res.Runtime.Seconds(),
			Iterations:     res.Iterations,
		})
	}
}

// jsonCost maps +Inf (no solution) to -1, since JSON has no infinity.
func jsonCost(cost float64) float64 {
	if cost > 1e308 {
		return -1
	}

	return cost
}
