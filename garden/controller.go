package garden

import (
	"context"
	"sync"

	"github.com/cs232s20/plants-backend/garden/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Controller interface {
	DB() *gorm.DB

	InsertFertilizer(input model.FertilizerInput) (*model.Fertilizer, error)
	FertilizerByID(id uint64) (*model.Fertilizer, error)
	FertilizerByType(fertilizerType string) (*model.Fertilizer, error)
	AllFertilizers() ([]model.Fertilizer, error)
	DeleteFertilizer(id uint64) error

	InsertPlot(input model.PlotInput) (*model.Plot, error)
	PlotByID(id uint64) (*model.Plot, error)
	PlotBySunlight(sunlight string) (*model.Plot, error)
	PlotByPH(pH int) (*model.Plot, error)
	PlotByFertilizer(fertilizerType string) (*model.Plot, error)
	AllPlots() ([]model.Plot, error)
	DeletePlot(id uint64) error

	InsertPlant(input model.PlantInput) (*model.Plant, error)
	PlantByID(id uint64) (*model.Plant, error)
	PlantByName(name string) (*model.Plant, error)
	PlantByFertilizer(fertilizerType string) (*model.Plant, error)
	AllPlants() ([]model.Plant, error)
	DeletePlant(id uint64) error

	EventChannel(ctx context.Context) chan model.GardenEvent
	Broadcast(event model.GardenEvent)

	Close() error
}

type controller struct {
	db            *gorm.DB
	mutex         sync.RWMutex
	eventChannels map[string]chan model.GardenEvent
}

func NewController(settings Settings) (Controller, error) {

	db, err := gorm.Open(sqlite.Open(settings.DatabasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	for _, pragma := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	} {
		if r := db.Exec(pragma); r.Error != nil {
			return nil, r.Error
		}
	}

	if err := db.AutoMigrate(&model.Fertilizer{}, &model.Plot{}); err != nil {
		return nil, err
	}

	// SQLite cannot add a foreign key to an existing table, and the
	// plant foreign keys reference non-primary unique columns, so the
	// plant table is written out by hand rather than auto-migrated.
	createPlants := `CREATE TABLE IF NOT EXISTS plants (
		id integer PRIMARY KEY AUTOINCREMENT,
		name text NOT NULL,
		ph integer,
		fertilizer_type text,
		sunlight text,
		CONSTRAINT fk_plants_fertilizer FOREIGN KEY (fertilizer_type) REFERENCES fertilizers(type),
		CONSTRAINT fk_plants_plot FOREIGN KEY (sunlight) REFERENCES plots(sunlight))`

	if r := db.Exec(createPlants); r.Error != nil {
		return nil, r.Error
	}

	if r := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_plants_name ON plants(name)"); r.Error != nil {
		return nil, r.Error
	}

	c := controller{
		db:            db,
		eventChannels: make(map[string]chan model.GardenEvent),
	}

	return &c, nil
}

func (c *controller) DB() *gorm.DB {
	return c.db
}

// Close drops every event subscriber and closes the database handle.
func (c *controller) Close() error {
	c.mutex.Lock()
	for id, ch := range c.eventChannels {
		delete(c.eventChannels, id)
		close(ch)
	}
	c.mutex.Unlock()

	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
