package database

import (
	"fmt"

	"absenteeism-system/internal/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedAll copies the static reference tables into the master data tables so
// absence_events can be joined against them in SQL. Running it again updates
// descriptions in place and never duplicates rows.
func SeedAll(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// 1. Reasons
		for _, r := range model.Reasons() {
			reason := model.Reason{Code: r.ID}
			if err := tx.Where("code = ?", r.ID).
				Assign(map[string]any{"description": r.Description, "reason_group": r.Group}).
				FirstOrCreate(&reason).Error; err != nil {
				return fmt.Errorf("seed reason %d: %w", r.ID, err)
			}
		}

		// 2. Education levels
		for _, e := range model.EducationLevels() {
			level := model.EducationLevel{Code: e.Value}
			if err := tx.Where("code = ?", e.Value).
				Assign(map[string]any{"label": e.Label}).
				FirstOrCreate(&level).Error; err != nil {
				return fmt.Errorf("seed education level %d: %w", e.Value, err)
			}
		}

		logrus.WithFields(logrus.Fields{
			"reasons":          len(model.Reasons()),
			"education_levels": len(model.EducationLevels()),
		}).Info("Master data seeded")
		return nil
	})
}
