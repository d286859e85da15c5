package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swapnet-ops/internal/access"
	"swapnet-ops/internal/apperr"
	"swapnet-ops/internal/journal"
	"swapnet-ops/internal/station"
)

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (s *Server) registerOperator(g *gin.RouterGroup) {
	o := s.operator
	registerReads(g, o)

	g.GET("/failures", func(c *gin.Context) {
		list, err := failureQuery(c, o, o.FailureEvents())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})
	g.GET("/maintenance", func(c *gin.Context) {
		c.JSON(http.StatusOK, maintenanceQuery(c, o, o.MaintenanceActions()))
	})
	g.GET("/recommendations", func(c *gin.Context) {
		list, err := recommendationQuery(c, o, o.NetworkRecommendations())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	g.POST("/maintenance", s.addMaintenanceAction)
	g.PATCH("/maintenance/:id", s.updateMaintenanceStatus)
	g.POST("/failures/:id/acknowledge", s.acknowledgeFailure)
	g.PATCH("/recommendations/:id", s.updateRecommendationStatus)
}

func (s *Server) addMaintenanceAction(c *gin.Context) {
	var a station.MaintenanceAction
	if !bind(c, &a) {
		return
	}
	if a.Title == "" || a.StationID == "" {
		fail(c, apperr.Validation("title and stationId are required"))
		return
	}
	if a.Priority != "" && !a.Priority.Valid() {
		fail(c, apperr.Validation("unknown priority").WithDetail("priority", string(a.Priority)))
		return
	}
	if a.Status != "" && !a.Status.Valid() {
		fail(c, apperr.Validation("unknown status").WithDetail("status", string(a.Status)))
		return
	}
	a = s.operator.AddMaintenanceAction(a)
	s.recordAction(access.RoleOperator, journal.ActionAddMaintenanceAction, true)
	c.JSON(http.StatusCreated, a)
}

func (s *Server) updateMaintenanceStatus(c *gin.Context) {
	id := c.Param("id")
	var req statusRequest
	if !bind(c, &req) {
		return
	}
	ok, err := s.operator.UpdateMaintenanceActionStatus(id, station.ActionStatus(req.Status))
	if err != nil {
		fail(c, err)
		return
	}
	s.recordAction(access.RoleOperator, journal.ActionUpdateMaintenanceStatus, ok)
	if !ok {
		fail(c, apperr.NotFound("maintenance action", id))
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}

func (s *Server) acknowledgeFailure(c *gin.Context) {
	id := c.Param("id")
	ok := s.operator.AcknowledgeFailure(id)
	s.recordAction(access.RoleOperator, journal.ActionAcknowledgeFailure, ok)
	if !ok {
		fail(c, apperr.NotFound("failure event", id))
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) updateRecommendationStatus(c *gin.Context) {
	id := c.Param("id")
	var req statusRequest
	if !bind(c, &req) {
		return
	}
	ok, err := s.operator.UpdateRecommendationStatus(id, station.RecommendationStatus(req.Status))
	if err != nil {
		fail(c, err)
		return
	}
	s.recordAction(access.RoleOperator, journal.ActionUpdateRecommendationStatus, ok)
	if !ok {
		fail(c, apperr.NotFound("recommendation", id))
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}
