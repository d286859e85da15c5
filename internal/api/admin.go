package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swapnet-ops/internal/access"
	"swapnet-ops/internal/apperr"
	"swapnet-ops/internal/journal"
	"swapnet-ops/internal/station"
)

type runSimulationRequest struct {
	Kind string `json:"kind" binding:"required"`
}

func (s *Server) registerAdmin(g *gin.RouterGroup) {
	a := s.admin
	registerReads(g, a)

	g.GET("/failures", func(c *gin.Context) {
		list, err := failureQuery(c, a, a.FailureEvents())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})
	g.GET("/maintenance", func(c *gin.Context) {
		c.JSON(http.StatusOK, maintenanceQuery(c, a, a.MaintenanceActions()))
	})
	g.GET("/recommendations", func(c *gin.Context) {
		list, err := recommendationQuery(c, a, a.NetworkRecommendations())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	g.POST("/stations", s.addStation)
	g.PATCH("/stations", s.bulkUpdateStations)
	g.PATCH("/stations/:id", s.updateStation)
	g.DELETE("/stations/:id", s.removeStation)
	g.PATCH("/operational/:id", s.updateOperationalState)

	g.POST("/recommendations", s.addRecommendation)
	g.POST("/recommendations/:id/dismiss", s.dismissRecommendation)
	g.POST("/failures", s.recordFailure)
	g.POST("/reset", s.reset)

	g.GET("/simulation", func(c *gin.Context) {
		c.JSON(http.StatusOK, a.Simulation())
	})
	g.POST("/simulation", s.runSimulation)
	g.PUT("/simulation", s.setSimulation)
	g.DELETE("/simulation", s.resetSimulation)
}

func (s *Server) addStation(c *gin.Context) {
	var st station.Station
	if !bind(c, &st) {
		return
	}
	if st.ID == "" {
		fail(c, apperr.Validation("station id is required"))
		return
	}
	s.admin.AddStation(st)
	s.recordAction(access.RoleAdmin, journal.ActionAddStation, true)
	c.JSON(http.StatusCreated, st)
}

func (s *Server) updateStation(c *gin.Context) {
	id := c.Param("id")
	var patch station.StationPatch
	if !bind(c, &patch) {
		return
	}
	ok := s.admin.UpdateStationConfig(id, patch)
	s.recordAction(access.RoleAdmin, journal.ActionUpdateStationConfig, ok)
	if !ok {
		fail(c, apperr.NotFound("station", id))
		return
	}
	st, _ := s.admin.StationByID(id)
	c.JSON(http.StatusOK, st)
}

func (s *Server) bulkUpdateStations(c *gin.Context) {
	var updates []station.StationUpdate
	if !bind(c, &updates) {
		return
	}
	n := s.admin.BulkUpdateStationConfig(updates)
	s.recordAction(access.RoleAdmin, journal.ActionBulkUpdateStationConfig, n > 0)
	c.JSON(http.StatusOK, gin.H{"updated": n, "requested": len(updates)})
}

func (s *Server) removeStation(c *gin.Context) {
	id := c.Param("id")
	ok := s.admin.RemoveStation(id)
	s.recordAction(access.RoleAdmin, journal.ActionRemoveStation, ok)
	if !ok {
		fail(c, apperr.NotFound("station", id))
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) updateOperationalState(c *gin.Context) {
	id := c.Param("id")
	var patch station.OperationalPatch
	if !bind(c, &patch) {
		return
	}
	if patch.Status != nil && !patch.Status.Valid() {
		fail(c, apperr.Validation("unknown station status").WithDetail("status", string(*patch.Status)))
		return
	}
	ok := s.admin.UpdateOperationalState(id, patch)
	s.recordAction(access.RoleAdmin, journal.ActionUpdateOperationalState, ok)
	if !ok {
		fail(c, apperr.NotFound("operational state", id))
		return
	}
	st, _ := s.admin.OperationalStateByID(id)
	c.JSON(http.StatusOK, st)
}

func (s *Server) addRecommendation(c *gin.Context) {
	var rec station.NetworkRecommendation
	if !bind(c, &rec) {
		return
	}
	if rec.Title == "" {
		fail(c, apperr.Validation("recommendation title is required"))
		return
	}
	if rec.Priority != "" && !rec.Priority.Valid() {
		fail(c, apperr.Validation("unknown priority").WithDetail("priority", string(rec.Priority)))
		return
	}
	rec = s.admin.AddRecommendation(rec)
	s.recordAction(access.RoleAdmin, journal.ActionAddRecommendation, true)
	c.JSON(http.StatusCreated, rec)
}

func (s *Server) dismissRecommendation(c *gin.Context) {
	id := c.Param("id")
	ok := s.admin.DismissRecommendation(id)
	s.recordAction(access.RoleAdmin, journal.ActionDismissRecommendation, ok)
	if !ok {
		fail(c, apperr.NotFound("recommendation", id))
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) recordFailure(c *gin.Context) {
	var f station.FailureEvent
	if !bind(c, &f) {
		return
	}
	if f.StationID == "" {
		fail(c, apperr.Validation("stationId is required"))
		return
	}
	if f.Severity != "" && !f.Severity.Valid() {
		fail(c, apperr.Validation("unknown severity").WithDetail("severity", string(f.Severity)))
		return
	}
	f = s.admin.RecordFailure(f)
	s.recordAction(access.RoleAdmin, journal.ActionRecordFailure, true)
	c.JSON(http.StatusCreated, f)
}

func (s *Server) reset(c *gin.Context) {
	s.admin.Reset()
	s.recordAction(access.RoleAdmin, journal.ActionReset, true)
	c.Status(http.StatusNoContent)
}

func (s *Server) runSimulation(c *gin.Context) {
	var req runSimulationRequest
	if !bind(c, &req) {
		return
	}
	if err := s.admin.RunSimulation(c.Request.Context(), req.Kind); err != nil {
		fail(c, err)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordSimulationRun(req.Kind)
	}
	c.JSON(http.StatusAccepted, s.admin.Simulation())
}

func (s *Server) setSimulation(c *gin.Context) {
	var st station.SimulationState
	if !bind(c, &st) {
		return
	}
	switch st.Status {
	case station.SimIdle, station.SimRunning, station.SimCompleted:
	default:
		fail(c, apperr.Validation("unknown simulation status").WithDetail("status", string(st.Status)))
		return
	}
	s.admin.SetSimulationState(st)
	s.recordAction(access.RoleAdmin, journal.ActionSetSimulationState, true)
	c.JSON(http.StatusOK, s.admin.Simulation())
}

func (s *Server) resetSimulation(c *gin.Context) {
	s.admin.ResetSimulation()
	s.recordAction(access.RoleAdmin, journal.ActionResetSimulation, true)
	c.JSON(http.StatusOK, s.admin.Simulation())
}
