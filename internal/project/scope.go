package project

import "gorm.io/gorm"

// Scope restricts a query to a single project.
func Scope(projectID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("project_id = ?", projectID)
	}
}
