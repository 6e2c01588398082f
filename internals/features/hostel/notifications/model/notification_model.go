package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type NotificationModel struct {
	NotificationID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:notification_id" json:"notification_id"`

	NotificationTitle string `gorm:"size:150;not null;column:notification_title" json:"notification_title"`
	NotificationBody  string `gorm:"type:text;not null;column:notification_body" json:"notification_body"`

	// audiens berdasar role: {"student","parent","staff","warden"}; kosong = semua
	NotificationAudience pq.StringArray `gorm:"type:text[];column:notification_audience" json:"notification_audience"`

	NotificationAuthorID uuid.UUID `gorm:"type:uuid;not null;column:notification_author_id" json:"notification_author_id"`

	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }

// NotificationReadModel menandai satu user sudah membaca satu notifikasi.
type NotificationReadModel struct {
	NotificationReadID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:notification_read_id" json:"notification_read_id"`

	NotificationReadNotificationID uuid.UUID `gorm:"type:uuid;not null;column:notification_read_notification_id;uniqueIndex:idx_notification_read_once" json:"notification_read_notification_id"`
	NotificationReadUserID         uuid.UUID `gorm:"type:uuid;not null;column:notification_read_user_id;uniqueIndex:idx_notification_read_once" json:"notification_read_user_id"`

	NotificationReadAt time.Time `gorm:"column:notification_read_at;autoCreateTime" json:"notification_read_at"`
}

func (NotificationReadModel) TableName() string { return "notification_reads" }
