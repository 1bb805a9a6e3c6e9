package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/firstbreaklabs/steam-intel/internal/messaging"
)

// validCollectJobs are the collector names that may be triggered manually
var validCollectJobs = map[string]bool{
	"portfolio":    true,
	"market":       true,
	"genres":       true,
	"correlations": true,
	"upcoming":     true,
	"revenue":      true,
}

// TriggerCollection publishes an out-of-schedule collect trigger
func (h *handler) TriggerCollection(c *gin.Context) {
	job := c.Param("job")
	if !validCollectJobs[job] {
		respondBadRequest(c, "Unknown job "+job)
		return
	}

	trigger := messaging.NewCollectTrigger(job, "api", h.clock.Now())
	if err := h.publisher.PublishTrigger(c.Request.Context(), trigger); err != nil {
		respondInternalError(c, err, "Failed to publish collect trigger", zap.String("job", job))
		return
	}

	c.JSON(http.StatusAccepted, TriggerResult{
		TriggerID: trigger.ID,
		Job:       job,
		Status:    "queued",
	})
}

// ListCollectionRuns retrieves recent collector run audit rows
func (h *handler) ListCollectionRuns(c *gin.Context) {
	limit, err := parseIntQuery(c, "limit", 20, MAX_LIMIT)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	runs, err := h.store.ListRecentCollectionRuns(c.Request.Context(), limit)
	if err != nil {
		respondInternalError(c, err, "Failed to load collection runs")
		return
	}

	rows := make([]CollectionRunView, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, CollectionRunView{
			ID:             run.ID,
			Job:            run.Job,
			Status:         string(run.Status),
			ItemsProcessed: run.ItemsProcessed,
			StartedAt:      run.StartedAt.Format(time.RFC3339),
			FinishedAt:     timestampPtr(run.FinishedAt),
			Error:          run.Error,
		})
	}

	c.JSON(http.StatusOK, gin.H{"runs": rows})
}
