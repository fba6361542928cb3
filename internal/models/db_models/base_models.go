package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"time"
)

// BaseModel is shared by every persisted document. The Mongo store keys
// documents by their owner, so the gorm bookkeeping fields are not encoded to BSON.
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" bson:"-" json:"-"`
	CreatedAt int64          `gorm:"autoCreateTime" bson:"created_at" json:"createdAt"`
	UpdatedAt int64          `gorm:"autoUpdateTime" bson:"updated_at" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" bson:"-" json:"-"`
}

// Hooks to manage int64 timestamps
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	b.Touch(true)
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.Touch(false)
	return nil
}

// Touch stamps the model the same way the gorm hooks do, for stores without hooks.
func (b *BaseModel) Touch(creating bool) {
	now := time.Now().Unix()
	if creating {
		if b.ID == uuid.Nil {
			b.ID = uuid.New()
		}
		if b.CreatedAt == 0 {
			b.CreatedAt = now
		}
	}
	b.UpdatedAt = now
}
