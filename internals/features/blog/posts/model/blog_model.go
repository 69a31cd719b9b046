package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogModel struct {
	BlogID    uuid.UUID `json:"blog_id" gorm:"column:blog_id;type:uuid;default:gen_random_uuid();primaryKey"`
	BlogTitle string    `json:"blog_title" gorm:"column:blog_title;type:text;not null"`
	// unique among live rows only; soft-deleted slugs can be reused
	BlogSlug        string `json:"blog_slug" gorm:"column:blog_slug;type:text;not null"`
	BlogDescription string `json:"blog_description" gorm:"column:blog_description;type:text;not null"`

	BlogFeatureImageURL       *string `json:"blog_feature_image_url" gorm:"column:blog_feature_image_url;type:text"`
	BlogFeatureImageObjectKey *string `json:"blog_feature_image_object_key" gorm:"column:blog_feature_image_object_key;type:text"`

	BlogCreatedAt time.Time      `json:"blog_created_at" gorm:"column:blog_created_at;not null;default:now()"`
	BlogUpdatedAt time.Time      `json:"blog_updated_at" gorm:"column:blog_updated_at;not null;default:now()"`
	BlogDeletedAt gorm.DeletedAt `json:"blog_deleted_at,omitempty" gorm:"column:blog_deleted_at;index"`
}

func (BlogModel) TableName() string {
	return "blogs"
}
