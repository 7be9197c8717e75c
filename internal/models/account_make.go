package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountMake is a named bread-type template registered by a bakery account.
// The key is unique within the account and is the stable identifier clients
// use when recording dough makes.
type AccountMake struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uidx_account_make_key" json:"account_id"`
	AccountName string    `gorm:"not null" json:"account_name"`
	DisplayName string    `gorm:"not null" json:"display_name"`
	Key         string    `gorm:"not null;uniqueIndex:uidx_account_make_key" json:"key"`
	CreatedAt   time.Time `json:"created_at"`
}

func (AccountMake) TableName() string { return "account_makes" }
