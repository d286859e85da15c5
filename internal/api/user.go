package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"swapnet-ops/internal/apperr"
	"swapnet-ops/internal/recommend"
)

func (s *Server) registerUser(g *gin.RouterGroup) {
	u := s.user
	registerReads(g, u)

	g.GET("/recommendations", func(c *gin.Context) {
		list, err := recommendationQuery(c, u, u.NetworkRecommendations())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})
	g.GET("/locations", func(c *gin.Context) {
		c.JSON(http.StatusOK, u.Locations())
	})
	g.GET("/swap-recommendations", s.swapRecommendations)
}

// swapRecommendations plans a route between two configured locations.
// Query: origin, destination, sort, minComfort, maxDistance, maxWait.
func (s *Server) swapRecommendations(c *gin.Context) {
	locs := s.user.Locations()
	origin, ok := recommend.FindLocation(locs, c.Query("origin"))
	if !ok {
		fail(c, apperr.NotFound("location", c.Query("origin")))
		return
	}
	dest, ok := recommend.FindLocation(locs, c.Query("destination"))
	if !ok {
		fail(c, apperr.NotFound("location", c.Query("destination")))
		return
	}
	key, err := recommend.ParseSortKey(c.Query("sort"))
	if err != nil {
		fail(c, apperr.Validation(err.Error()).WithDetail("sort", c.Query("sort")))
		return
	}

	var f recommend.Filter
	if f.MinComfort, err = intQuery(c, "minComfort"); err != nil {
		fail(c, err)
		return
	}
	if f.MaxWait, err = intQuery(c, "maxWait"); err != nil {
		fail(c, err)
		return
	}
	if v := c.Query("maxDistance"); v != "" {
		if f.MaxDistance, err = strconv.ParseFloat(v, 64); err != nil {
			fail(c, apperr.Validation("maxDistance must be a number").WithDetail("maxDistance", v))
			return
		}
	}

	rec := s.user.SwapRecommendations(recommend.Route{Origin: origin, Destination: dest}, f, key)
	c.JSON(http.StatusOK, rec)
}

func intQuery(c *gin.Context, name string) (int, error) {
	v := c.Query(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, apperr.Validation(name + " must be an integer").WithDetail(name, v)
	}
	return n, nil
}
