package api

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"swapnet-ops/internal/selectors"
	"swapnet-ops/internal/station"
)

var funcs = template.FuncMap{
	"pct": func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
}

type overviewData struct {
	Summary         selectors.NetworkSummary
	States          []station.OperationalState
	Critical        []station.FailureEvent
	Pending         []station.MaintenanceAction
	Recommendations []station.NetworkRecommendation
	Simulation      station.SimulationState
}

func (s *Server) overview(c *gin.Context) {
	data := overviewData{
		Summary:         s.admin.Summary(),
		States:          s.admin.OperationalStates(),
		Critical:        s.admin.CriticalFailures(),
		Pending:         s.admin.PendingMaintenanceActions(),
		Recommendations: s.admin.ActiveRecommendations(),
		Simulation:      s.admin.Simulation(),
	}
	var buf bytes.Buffer
	if err := s.tpl.Execute(&buf, data); err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
