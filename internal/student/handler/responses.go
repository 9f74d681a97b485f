package handler

import "admission/internal/student/models"

// studentResponse wraps a single record with a human-readable message,
// matching what admission dashboards display after a confirm or delete.
type studentResponse struct {
	Message string          `json:"message"`
	Student *models.Student `json:"student"`
}
