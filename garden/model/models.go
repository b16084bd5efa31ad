package model

type Fertilizer struct {
	ID   uint64 `json:"id" gorm:"primaryKey"`
	Type string `json:"type" gorm:"uniqueIndex;not null"`
}

type Plot struct {
	ID             uint64      `json:"id" gorm:"primaryKey"`
	Sunlight       string      `json:"sunlight" gorm:"uniqueIndex;not null"`
	PH             int         `json:"pH" gorm:"column:ph"`
	FertilizerType *string     `json:"fertilizer_type"`
	Fertilizer     *Fertilizer `json:"-" gorm:"foreignKey:FertilizerType;references:Type"`
}

// Plant carries no gorm association fields. Both of its foreign keys
// target non-primary unique columns, and the sunlight one would be
// resolved as has-one (plots referencing plants), so the plant table
// is created by hand in NewController instead of being auto-migrated.
type Plant struct {
	ID             uint64  `json:"id" gorm:"primaryKey"`
	Name           string  `json:"name" gorm:"uniqueIndex;not null"`
	PH             int     `json:"pH" gorm:"column:ph"`
	FertilizerType *string `json:"fertilizer_type"`
	Sunlight       string  `json:"sunlight"`
}
