package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Tags is stored as a single comma-joined column.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "", nil
	}
	return strings.Join(t, ","), nil
}

func (t *Tags) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = nil
	case string:
		if v == "" {
			*t = nil
		} else {
			*t = strings.Split(v, ",")
		}
	case []byte:
		return t.Scan(string(v))
	default:
		return fmt.Errorf("tags: unsupported scan type %T", src)
	}
	return nil
}

// Skill is a service offering posted by a business user.
type Skill struct {
	ID            string `gorm:"primaryKey"`
	Title         string
	Description   string
	Price         int64
	Category      string `gorm:"index"`
	Location      string
	Tags          Tags   `gorm:"type:text"`
	BusinessID    string `gorm:"index"`
	BusinessName  string
	BusinessEmail string
	Active        bool      `gorm:"default:true"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}
