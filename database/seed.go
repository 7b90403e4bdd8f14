package database

import (
	"fmt"
	"log"
	"time"

	"github.com/openmario/api/model"
	"gorm.io/gorm"
)

// RunSeeds populates development data for the relational store:
// a handful of companies with positions, locations for autocomplete,
// and one catalog ingestion marker so the cache invalidation job has
// a baseline version.
func RunSeeds(db *gorm.DB) error {
	if err := seedCompanies(db); err != nil {
		return fmt.Errorf("failed to seed companies: %w", err)
	}
	if err := seedLocations(db); err != nil {
		return fmt.Errorf("failed to seed locations: %w", err)
	}
	if err := seedCatalogIngestion(db); err != nil {
		return fmt.Errorf("failed to seed catalog ingestion: %w", err)
	}
	return nil
}

func seedCompanies(db *gorm.DB) error {
	companies := map[string][]string{
		"Lockheed Martin":    {"Software Engineering Co-op", "Systems Engineering Co-op"},
		"Comcast":            {"Software Developer Co-op", "Data Analyst Co-op"},
		"Vanguard":           {"Application Developer Co-op"},
		"Children's Hospital of Philadelphia": {"Research Assistant Co-op"},
	}

	for name, positions := range companies {
		company := model.Company{Name: name}
		err := db.Where(model.Company{Name: name}).FirstOrCreate(&company).Error
		if err != nil {
			return err
		}

		for _, positionName := range positions {
			position := model.Position{CompanyID: company.ID, Name: positionName}
			err := db.Where(model.Position{CompanyID: company.ID, Name: positionName}).
				FirstOrCreate(&position).Error
			if err != nil {
				return err
			}
		}

		log.Printf("Seeded company %q with %d positions", name, len(positions))
	}

	return nil
}

func seedLocations(db *gorm.DB) error {
	locations := []model.Location{
		{StateCode: "PA", State: "Pennsylvania", City: "Philadelphia"},
		{StateCode: "PA", State: "Pennsylvania", City: "Pittsburgh"},
		{StateCode: "NJ", State: "New Jersey", City: "Camden"},
		{StateCode: "NY", State: "New York", City: "New York"},
		{StateCode: "DE", State: "Delaware", City: "Wilmington"},
	}

	for _, loc := range locations {
		err := db.Where(model.Location{
			StateCode: loc.StateCode,
			State:     loc.State,
			City:      loc.City,
		}).FirstOrCreate(&loc).Error
		if err != nil {
			return err
		}
	}

	log.Printf("Seeded %d locations", len(locations))
	return nil
}

func seedCatalogIngestion(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.CatalogIngestion{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	marker := model.CatalogIngestion{
		Version:     "dev-baseline",
		Term:        "202615",
		CompletedAt: time.Now(),
	}
	if err := db.Create(&marker).Error; err != nil {
		return err
	}

	log.Println("Seeded baseline catalog ingestion marker")
	return nil
}
