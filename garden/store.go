package garden

import (
	"errors"

	"github.com/cs232s20/plants-backend/garden/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Inserts use ON CONFLICT DO NOTHING on the entity's unique key and
// re-fetch afterwards, so the caller always gets the surviving record
// whether or not the row already existed. Lookups return a nil record
// and nil error when no row matches.

func (c *controller) InsertFertilizer(input model.FertilizerInput) (*model.Fertilizer, error) {
	fertilizer := model.Fertilizer{
		Type: input.Type,
	}

	r := c.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&fertilizer)
	if r.Error != nil {
		return nil, r.Error
	}

	return c.FertilizerByType(input.Type)
}

func (c *controller) FertilizerByID(id uint64) (*model.Fertilizer, error) {
	var fertilizer model.Fertilizer
	r := c.db.First(&fertilizer, id)

	if errors.Is(r.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if r.Error != nil {
		return nil, r.Error
	}

	return &fertilizer, nil
}

func (c *controller) FertilizerByType(fertilizerType string) (*model.Fertilizer, error) {
	var fertilizer model.Fertilizer
	r := c.db.Where("type = ?", fertilizerType).First(&fertilizer)

	if errors.Is(r.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if r.Error != nil {
		return nil, r.Error
	}

	return &fertilizer, nil
}

func (c *controller) AllFertilizers() ([]model.Fertilizer, error) {
	fertilizers := make([]model.Fertilizer, 0)
	r := c.db.Find(&fertilizers)

	if r.Error != nil {
		return nil, r.Error
	}

	return fertilizers, nil
}

func (c *controller) DeleteFertilizer(id uint64) error {
	return c.db.Delete(&model.Fertilizer{}, id).Error
}

func (c *controller) InsertPlot(input model.PlotInput) (*model.Plot, error) {
	if input.FertilizerType != nil {
		if _, err := c.InsertFertilizer(model.FertilizerInput{Type: *input.FertilizerType}); err != nil {
			return nil, err
		}
	}

	plot := model.Plot{
		Sunlight:       input.Sunlight,
		PH:             input.PH,
		FertilizerType: input.FertilizerType,
	}

	r := c.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&plot)
	if r.Error != nil {
		return nil, r.Error
	}

	return c.PlotBySunlight(input.Sunlight)
}

func (c *controller) PlotByID(id uint64) (*model.Plot, error) {
	var plot model.Plot
	r := c.db.First(&plot, id)

	if errors.Is(r.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if r.Error != nil {
		return nil, r.Error
	}

	return &plot, nil
}

func (c *controller) PlotBySunlight(sunlight string) (*model.Plot, error) {
	var plot model.Plot
	r := c.db.Where("sunlight = ?", sunlight).First(&plot)

	if errors.Is(r.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if r.Error != nil {
		return nil, r.Error
	}

	return &plot, nil
}

func (c *controller) PlotByPH(pH int) (*model.Plot, error) {
	var plot model.Plot
	r := c.db.Where("ph = ?", pH).First(&plot)

	if errors.Is(r.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if r.Error != nil {
		return nil, r.Error
	}

	return &plot, nil
}

func (c *controller) PlotByFertilizer(fertilizerType string) (*model.Plot, error) {
	var plot model.Plot
	r := c.db.Where("fertilizer_type = ?", fertilizerType).First(&plot)

	if errors.Is(r.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if r.Error != nil {
		return nil, r.Error
	}

	return &plot, nil
}

func (c *controller) AllPlots() ([]model.Plot, error) {
	plots := make([]model.Plot, 0)
	r := c.db.Find(&plots)

	if r.Error != nil {
		return nil, r.Error
	}

	return plots, nil
}

func (c *controller) DeletePlot(id uint64) error {
	return c.db.Delete(&model.Plot{}, id).Error
}

func (c *controller) InsertPlant(input model.PlantInput) (*model.Plant, error) {
	if input.FertilizerType != nil {
		if _, err := c.InsertFertilizer(model.FertilizerInput{Type: *input.FertilizerType}); err != nil {
			return nil, err
		}
	}

	plant := model.Plant{
		Name:           input.Name,
		PH:             input.PH,
		FertilizerType: input.FertilizerType,
		Sunlight:       input.Sunlight,
	}

	r := c.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&plant)
	if r.Error != nil {
		return nil, r.Error
	}

	return c.PlantByName(input.Name)
}

func (c *controller) PlantByID(id uint64) (*model.Plant, error) {
	var plant model.Plant
	r := c.db.First(&plant, id)

	if errors.Is(r.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if r.Error != nil {
		return nil, r.Error
	}

	return &plant, nil
}

func (c *controller) PlantByName(name string) (*model.Plant, error) {
	var plant model.Plant
	r := c.db.Where("name = ?", name).First(&plant)

	if errors.Is(r.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if r.Error != nil {
		return nil, r.Error
	}

	return &plant, nil
}

func (c *controller) PlantByFertilizer(fertilizerType string) (*model.Plant, error) {
	var plant model.Plant
	r := c.db.Where("fertilizer_type = ?", fertilizerType).First(&plant)

	if errors.Is(r.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if r.Error != nil {
		return nil, r.Error
	}

	return &plant, nil
}

func (c *controller) AllPlants() ([]model.Plant, error) {
	plants := make([]model.Plant, 0)
	r := c.db.Find(&plants)

	if r.Error != nil {
		return nil, r.Error
	}

	return plants, nil
}

func (c *controller) DeletePlant(id uint64) error {
	return c.db.Delete(&model.Plant{}, id).Error
}
