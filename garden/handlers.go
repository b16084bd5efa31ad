package garden

import (
	"net/http"
	"strconv"

	"github.com/cs232s20/plants-backend/garden/model"
	"github.com/gin-gonic/gin"
)

type Server struct {
	version    string
	controller Controller
}

func NewServer(version string, controller Controller) *Server {
	return &Server{
		version:    version,
		controller: controller,
	}
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "alive",
		"version": s.version,
	})
}

func abortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// requireForm answers 422 and returns false if any of the given form
// parameters is absent from the request.
func requireForm(c *gin.Context, params ...string) bool {
	for _, p := range params {
		if _, ok := c.GetPostForm(p); !ok {
			abortError(c, http.StatusUnprocessableEntity, "parameter "+p+" required")
			return false
		}
	}
	return true
}

// idParam parses the :id route parameter. A value that is not a
// number cannot match any row, so it maps to id 0.
func idParam(c *gin.Context) uint64 {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func formPH(c *gin.Context) (int, bool) {
	pH, err := strconv.Atoi(c.PostForm("pH"))
	if err != nil {
		abortError(c, http.StatusUnprocessableEntity, "parameter pH must be an integer")
		return 0, false
	}
	return pH, true
}

func optionalForm(c *gin.Context, param string) *string {
	if v, ok := c.GetPostForm(param); ok {
		return &v
	}
	return nil
}

func (s *Server) plotResponse(c *gin.Context, plot *model.Plot, err error) {
	if err != nil {
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if plot == nil {
		abortError(c, http.StatusNotFound, "plot not found")
		return
	}
	c.JSON(http.StatusOK, plot)
}

func (s *Server) GetPlots(c *gin.Context) {
	if sunlight, ok := c.GetQuery("sunlight"); ok {
		plot, err := s.controller.PlotBySunlight(sunlight)
		s.plotResponse(c, plot, err)
		return
	}

	if pH, ok := c.GetQuery("pH"); ok {
		value, err := strconv.Atoi(pH)
		if err != nil {
			abortError(c, http.StatusNotFound, "plot not found")
			return
		}
		plot, err := s.controller.PlotByPH(value)
		s.plotResponse(c, plot, err)
		return
	}

	if fertilizerType, ok := c.GetQuery("fertilizer_type"); ok {
		plot, err := s.controller.PlotByFertilizer(fertilizerType)
		s.plotResponse(c, plot, err)
		return
	}

	plots, err := s.controller.AllPlots()
	if err != nil {
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, plots)
}

func (s *Server) GetPlot(c *gin.Context) {
	plot, err := s.controller.PlotByID(idParam(c))
	s.plotResponse(c, plot, err)
}

func (s *Server) PostPlot(c *gin.Context) {
	if !requireForm(c, "sunlight", "pH") {
		return
	}

	pH, ok := formPH(c)
	if !ok {
		return
	}

	input := model.PlotInput{
		Sunlight:       c.PostForm("sunlight"),
		PH:             pH,
		FertilizerType: optionalForm(c, "fertilizer_type"),
	}

	plot, err := s.controller.InsertPlot(input)
	if err != nil {
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}

	s.controller.Broadcast(model.GardenEvent{
		Action:   model.EventCreated,
		Resource: "plot",
		Record:   plot,
	})

	c.JSON(http.StatusOK, plot)
}

func (s *Server) DeletePlot(c *gin.Context) {
	id := idParam(c)

	plot, err := s.controller.PlotByID(id)
	if err != nil {
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if plot == nil {
		abortError(c, http.StatusNotFound, "plot not found")
		return
	}

	if err := s.controller.DeletePlot(id); err != nil {
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}

	s.controller.Broadcast(model.GardenEvent{
		Action:   model.EventDeleted,
		Resource: "plot",
		Record:   plot,
	})

	c.JSON(http.StatusOK, gin.H{"message": "plot deleted successfully"})
}

func (s *Server) plantResponse(c *gin.Context, plant *model.Plant, err error) {
	if err != nil {
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if plant == nil {
		abortError(c, http.StatusNotFound, "plant not found")
		return
	}
	c.JSON(http.StatusOK, plant)
}

func (s *Server) GetPlants(c *gin.Context) {
	if name, ok := c.GetQuery("name"); ok {
		plant, err := s.controller.PlantByName(name)
		s.plantResponse(c, plant, err)
		return
	}

	if fertilizerType, ok := c.GetQuery("fertilizer_type"); ok {
		plant, err := s.controller.PlantByFertilizer(fertilizerType)
		s.plantResponse(c, plant, err)
		return
	}

	plants, err := s.controller.AllPlants()
	if err != nil {
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, plants)
}

func (s *Server) GetPlant(c *gin.Context) {
	plant, err := s.controller.PlantByID(idParam(c))
	s.plantResponse(c, plant, err)
}

func (s *Server) PostPlant(c *gin.Context) {
	if !requireForm(c, "plant", "pH", "sunlight") {
		return
	}

	pH, ok := formPH(c)
	if !ok {
		return
	}

	input := model.PlantInput{
		Name:           c.PostForm("plant"),
		PH:             pH,
		Sunlight:       c.PostForm("sunlight"),
		FertilizerType: optionalForm(c, "fertilizer_type"),
	}

	plant, err := s.controller.InsertPlant(input)
	if err != nil {
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}

	s.controller.Broadcast(model.GardenEvent{
		Action:   model.EventCreated,
		Resource: "plant",
		Record:   plant,
	})

	c.JSON(http.StatusOK, plant)
}

func (s *Server) DeletePlant(c *gin.Context) {
	id := idParam(c)

	plant, err := s.controller.PlantByID(id)
	if err != nil {
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if plant == nil {
		abortError(c, http.StatusNotFound, "plant not found")
		return
	}

	if err := s.controller.DeletePlant(id); err != nil {
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}

	s.controller.Broadcast(model.GardenEvent{
		Action:   model.EventDeleted,
		Resource: "plant",
		Record:   plant,
	})

	c.JSON(http.StatusOK, gin.H{"message": "plant deleted successfully"})
}

func (s *Server) fertilizerResponse(c *gin.Context, fertilizer *model.Fertilizer, err error) {
	if err != nil {
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if fertilizer == nil {
		abortError(c, http.StatusNotFound, "fertilizer not found")
		return
	}
	c.JSON(http.StatusOK, fertilizer)
}

func (s *Server) GetFertilizers(c *gin.Context) {
	if fertilizerType, ok := c.GetQuery("type"); ok {
		fertilizer, err := s.controller.FertilizerByType(fertilizerType)
		s.fertilizerResponse(c, fertilizer, err)
		return
	}

	fertilizers, err := s.controller.AllFertilizers()
	if err != nil {
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, fertilizers)
}

func (s *Server) GetFertilizer(c *gin.Context) {
	fertilizer, err := s.controller.FertilizerByID(idParam(c))
	s.fertilizerResponse(c, fertilizer, err)
}

func (s *Server) PostFertilizer(c *gin.Context) {
	if !requireForm(c, "type") {
		return
	}

	input := model.FertilizerInput{
		Type: c.PostForm("type"),
	}

	fertilizer, err := s.controller.InsertFertilizer(input)
	if err != nil {
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}

	s.controller.Broadcast(model.GardenEvent{
		Action:   model.EventCreated,
		Resource: "fertilizer",
		Record:   fertilizer,
	})

	c.JSON(http.StatusOK, fertilizer)
}

func (s *Server) DeleteFertilizer(c *gin.Context) {
	id := idParam(c)

	fertilizer, err := s.controller.FertilizerByID(id)
	if err != nil {
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if fertilizer == nil {
		abortError(c, http.StatusNotFound, "fertilizer not found")
		return
	}

	if err := s.controller.DeleteFertilizer(id); err != nil {
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}

	s.controller.Broadcast(model.GardenEvent{
		Action:   model.EventDeleted,
		Resource: "fertilizer",
		Record:   fertilizer,
	})

	c.JSON(http.StatusOK, gin.H{"message": "fertilizer deleted successfully"})
}
