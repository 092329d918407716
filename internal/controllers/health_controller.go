package controllers

import (
	"context"
	"net/http"

	"github.com/HIMK322/TENET/internal/utils"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db Pinger
}

func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// GET /health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if c.db != nil {
		if err := c.db.Ping(r.Context()); err != nil {
			utils.RespondErrorWithCode(w, http.StatusServiceUnavailable, utils.ErrCodeInternal, "Database unreachable", nil, err)
			return
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
