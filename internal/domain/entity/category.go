package entity

import "time"

// Category representa una categoría de productos del catálogo local.
type Category struct {
	ID          int
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
