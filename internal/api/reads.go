package api

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"swapnet-ops/internal/access"
	"swapnet-ops/internal/apperr"
	"swapnet-ops/internal/station"
)

// registerReads mounts the read surface every role shares.
func registerReads(g *gin.RouterGroup, r access.Reader) {
	g.GET("/summary", func(c *gin.Context) {
		c.JSON(http.StatusOK, r.Summary())
	})

	g.GET("/stations", func(c *gin.Context) {
		switch c.Query("filter") {
		case "":
			c.JSON(http.StatusOK, r.Stations())
		case "available":
			c.JSON(http.StatusOK, r.AvailableStations())
		case "overloaded":
			c.JSON(http.StatusOK, r.OverloadedStations())
		case "low-inventory":
			c.JSON(http.StatusOK, r.LowInventoryStations())
		default:
			fail(c, apperr.Validation("unknown station filter").WithDetail("filter", c.Query("filter")))
		}
	})
	g.GET("/stations/:id", func(c *gin.Context) {
		st, ok := r.StationByID(c.Param("id"))
		if !ok {
			fail(c, apperr.NotFound("station", c.Param("id")))
			return
		}
		c.JSON(http.StatusOK, st)
	})

	g.GET("/operational", func(c *gin.Context) {
		switch station.Status(c.Query("status")) {
		case "":
			c.JSON(http.StatusOK, r.OperationalStates())
		case station.StatusOnline:
			c.JSON(http.StatusOK, r.OnlineStations())
		case station.StatusDegraded:
			c.JSON(http.StatusOK, r.DegradedStations())
		case station.StatusOffline:
			c.JSON(http.StatusOK, r.OfflineStations())
		default:
			fail(c, apperr.Validation("unknown station status").WithDetail("status", c.Query("status")))
		}
	})
	g.GET("/operational/:id", func(c *gin.Context) {
		st, ok := r.OperationalStateByID(c.Param("id"))
		if !ok {
			fail(c, apperr.NotFound("operational state", c.Param("id")))
			return
		}
		c.JSON(http.StatusOK, st)
	})
}

// failureQuery narrows failures by station, severity or recency. With no
// parameters it returns all.
func failureQuery(c *gin.Context, r access.Reader, all []station.FailureEvent) ([]station.FailureEvent, error) {
	switch {
	case c.Query("station") != "":
		return r.FailuresByStation(c.Query("station")), nil
	case c.Query("severity") != "":
		return r.FailuresBySeverity(c.Query("severity")), nil
	case c.Query("hours") != "":
		h, err := strconv.ParseFloat(c.Query("hours"), 64)
		if err != nil || math.IsNaN(h) || h <= 0 {
			return nil, apperr.Validation("hours must be a positive number").WithDetail("hours", c.Query("hours"))
		}
		return r.RecentFailures(h), nil
	case c.Query("critical") == "true":
		return r.CriticalFailures(), nil
	}
	return all, nil
}

func maintenanceQuery(c *gin.Context, r access.Reader, all []station.MaintenanceAction) []station.MaintenanceAction {
	switch {
	case c.Query("station") != "":
		return r.MaintenanceActionsByStation(c.Query("station"))
	case c.Query("status") == string(station.ActionPending):
		return r.PendingMaintenanceActions()
	case c.Query("status") != "":
		return r.MaintenanceActionsByStatus(c.Query("status"))
	case c.Query("critical") == "true":
		return r.CriticalMaintenanceActions()
	}
	return all
}

func recommendationQuery(c *gin.Context, r access.Reader, all []station.NetworkRecommendation) ([]station.NetworkRecommendation, error) {
	switch {
	case c.Query("station") != "":
		return r.RecommendationsByStation(c.Query("station")), nil
	case c.Query("priority") != "":
		p := station.Severity(c.Query("priority"))
		if !p.Valid() {
			return nil, apperr.Validation("unknown priority").WithDetail("priority", string(p))
		}
		return r.RecommendationsByPriority(p), nil
	case c.Query("active") == "true":
		return r.ActiveRecommendations(), nil
	}
	return all, nil
}

// bind decodes a JSON body, mapping decode failures to validation errors.
func bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		fail(c, apperr.Validation("invalid request body").WithDetail("error", err.Error()).Wrap(err))
		return false
	}
	return true
}
