// file: internals/features/classrooms/model/topic_model.go
package model

import "time"

type TopicModel struct {
	TopicID          string `gorm:"type:varchar(64);primaryKey;column:topic_id" json:"topic_id"`
	TopicClassroomID string `gorm:"type:varchar(64);not null;index;column:topic_classroom_id" json:"topic_classroom_id"`
	TopicName        string `gorm:"type:varchar(255);not null;column:topic_name" json:"topic_name"`

	// Urutan pelajaran hasil parse angka pertama di nama topic; 0 bila tidak ada angka.
	TopicPosition int `gorm:"type:int;not null;default:0;column:topic_position" json:"order"`

	TopicCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:topic_created_at" json:"topic_created_at"`
	TopicUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:topic_updated_at" json:"topic_updated_at"`
}

func (TopicModel) TableName() string { return "topics" }
