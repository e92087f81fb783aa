package ui

import "ath/internal/domain"

// Viewer displays failures from a stored run
type Viewer interface {
	View(results *domain.RunOutput) error
}
