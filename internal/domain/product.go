package domain

// Product exists in the persisted layout but has no serving endpoints.
type Product struct {
	ID    string `gorm:"primaryKey"`
	Name  string
	Color string
	Price string
}
