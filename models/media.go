package models

import "time"

// Media is an uploaded object in the S3-compatible bucket; rows keep the
// object key so it can be deleted or re-presigned later.
type Media struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FileName    string    `gorm:"size:191;not null" json:"file_name"`
	ObjectKey   string    `gorm:"size:255;uniqueIndex;not null" json:"object_key"`
	URL         string    `gorm:"size:512;not null" json:"url"`
	ContentType string    `gorm:"size:100" json:"content_type"`
	Size        int64     `json:"size"`
	UploadedBy  int64     `gorm:"index" json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Media) TableName() string {
	return "media"
}
