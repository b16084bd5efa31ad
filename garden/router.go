package garden

import (
	"github.com/gin-gonic/gin"
)

// NewRouter wires the resource routes onto a gin engine.
func NewRouter(s *Server) *gin.Engine {
	r := gin.Default()

	r.GET("/health", s.Health)

	r.GET("/plots", s.GetPlots)
	r.GET("/plots/:id", s.GetPlot)
	r.POST("/plots", s.PostPlot)
	r.DELETE("/plots/:id", s.DeletePlot)

	r.GET("/plants", s.GetPlants)
	r.GET("/plants/:id", s.GetPlant)
	r.POST("/plants", s.PostPlant)
	r.DELETE("/plants/:id", s.DeletePlant)

	r.GET("/fertilizer", s.GetFertilizers)
	r.GET("/fertilizer/:id", s.GetFertilizer)
	r.POST("/fertilizer", s.PostFertilizer)
	r.DELETE("/fertilizer/:id", s.DeleteFertilizer)

	r.GET("/ws", s.Events)

	return r
}
