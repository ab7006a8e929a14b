package region

import (
	"context"
	"io"

	"gopkg.in/yaml.v3"
)

// Province, City and Barangay are reference data. They are seeded rather than
// managed through the API and are never deleted.
type Province struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Code string `json:"code" gorm:"size:20;uniqueIndex;not null"`
	Name string `json:"name" gorm:"size:100;not null"`
}

type City struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Code       string    `json:"code" gorm:"size:20;uniqueIndex;not null"`
	Name       string    `json:"name" gorm:"size:100;not null"`
	ProvinceID uint      `json:"provinceId" gorm:"index;not null"`
	Province   *Province `json:"-"`
}

type Barangay struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Code       string `json:"code" gorm:"size:20;uniqueIndex;not null"`
	Name       string `json:"name" gorm:"size:100;not null"`
	ProvinceID uint   `json:"provinceId" gorm:"index;not null"`
	CityID     uint   `json:"cityId" gorm:"index;not null"`
	// LeaderboardRank and TotalDisposed are maintained by statistics jobs
	LeaderboardRank *int      `json:"leaderboardRank"`
	TotalDisposed   *float64  `json:"totalDisposed"`
	Province        *Province `json:"-"`
	City            *City     `json:"-"`
}

func (Province) TableName() string { return "province" }
func (City) TableName() string     { return "city" }
func (Barangay) TableName() string { return "barangay" }

// Seed is the document accepted by Repository.Import
type Seed struct {
	Provinces []SeedProvince `yaml:"provinces"`
}

type SeedProvince struct {
	Code   string     `yaml:"code"`
	Name   string     `yaml:"name"`
	Cities []SeedCity `yaml:"cities"`
}

type SeedCity struct {
	Code      string         `yaml:"code"`
	Name      string         `yaml:"name"`
	Barangays []SeedBarangay `yaml:"barangays"`
}

type SeedBarangay struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// ImportResult counts the rows an Import created
type ImportResult struct {
	Provinces int `json:"provinces"`
	Cities    int `json:"cities"`
	Barangays int `json:"barangays"`
}

// ParseSeed decodes a YAML seed document
func ParseSeed(r io.Reader) (*Seed, error) {
	var seed Seed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

type Repository interface {
	// GetProvince retrieves a Province given its id
	GetProvince(ctx context.Context, id uint) (*Province, error)
	// GetCityInProvince retrieves a City only if it belongs to the given Province
	GetCityInProvince(ctx context.Context, id uint, provinceID uint) (*City, error)
	// GetBarangay retrieves a Barangay given its id
	GetBarangay(ctx context.Context, id uint) (*Barangay, error)
	// GetBarangayInCity retrieves a Barangay only if it belongs to the given City
	GetBarangayInCity(ctx context.Context, id uint, cityID uint) (*Barangay, error)
	// Import inserts every entry of seed that does not exist yet, matching on code
	Import(ctx context.Context, seed Seed) (*ImportResult, error)
}
