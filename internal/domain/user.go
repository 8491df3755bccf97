package domain

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleBusiness Role = "business"
)

type User struct {
	ID           string `gorm:"primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         Role
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
