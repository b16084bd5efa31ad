package model

type FertilizerInput struct {
	Type string `form:"type"`
}

type PlotInput struct {
	Sunlight       string  `form:"sunlight"`
	PH             int     `form:"pH"`
	FertilizerType *string `form:"fertilizer_type"`
}

type PlantInput struct {
	Name           string  `form:"plant"`
	PH             int     `form:"pH"`
	Sunlight       string  `form:"sunlight"`
	FertilizerType *string `form:"fertilizer_type"`
}

const (
	EventCreated = "created"
	EventDeleted = "deleted"
)

type GardenEvent struct {
	Action   string      `json:"action"`
	Resource string      `json:"resource"`
	Record   interface{} `json:"record"`
}
