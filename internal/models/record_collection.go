package models

import "time"

// RecordCollection is the relational row behind one record store key: the
// whole collection is kept as a JSON document.
type RecordCollection struct {
	Name    string `gorm:"primaryKey;size:50"`
	Payload string `gorm:"type:text;not null"`

	UpdatedAt time.Time
}

func (RecordCollection) TableName() string {
	return "record_collections"
}
