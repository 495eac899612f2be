package entity

import "fmt"

// Vehicle is a read-only catalog entry.
type Vehicle struct {
	Brand string
	Model string
	Year  int
	Price float64
}

// Info renders the vehicle as a single catalog line.
func (v Vehicle) Info() string {
	return fmt.Sprintf("%s %s (%d) - $%.2f", v.Brand, v.Model, v.Year, v.Price)
}
