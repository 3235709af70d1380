package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SessionModel struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	VisitorID       string    `gorm:"column:visitor_id;type:varchar(64);not null;index" json:"visitorId"`
	SessionKey      string    `gorm:"column:session_key;type:varchar(64);not null;uniqueIndex" json:"sessionKey"`
	Country         *string   `gorm:"column:country;type:varchar(64)" json:"country"`
	Region          *string   `gorm:"column:region;type:varchar(64)" json:"region"`
	City            *string   `gorm:"column:city;type:varchar(64)" json:"city"`
	DeviceType      *string   `gorm:"column:device_type;type:varchar(20)" json:"deviceType"`
	Browser         *string   `gorm:"column:browser;type:varchar(64)" json:"browser"`
	OS              *string   `gorm:"column:os;type:varchar(64)" json:"os"`
	Referrer        *string   `gorm:"column:referrer;type:text" json:"referrer"`
	LandingPage     *string   `gorm:"column:landing_page;type:text" json:"landingPage"`
	IsBounce        bool      `gorm:"column:is_bounce;not null" json:"isBounce"`
	DurationSeconds int       `gorm:"column:duration_seconds;not null" json:"durationSeconds"`
	Converted       bool      `gorm:"column:converted;not null" json:"converted"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime;not null;index" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime;not null" json:"updatedAt"`
}

func (SessionModel) TableName() string {
	return "analytics_sessions"
}

type PageViewModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	SessionKey string    `gorm:"column:session_key;type:varchar(64);not null;index" json:"sessionKey"`
	VisitorID  string    `gorm:"column:visitor_id;type:varchar(64);not null;index" json:"visitorId"`
	Path       string    `gorm:"column:path;type:text;not null" json:"path"`
	Title      *string   `gorm:"column:title;type:varchar(300)" json:"title"`
	TimeOnPage int       `gorm:"column:time_on_page;not null" json:"timeOnPage"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime;not null;index" json:"createdAt"`
}

func (PageViewModel) TableName() string {
	return "page_views"
}

type EventModel struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	SessionKey string         `gorm:"column:session_key;type:varchar(64);not null;index" json:"sessionKey"`
	VisitorID  string         `gorm:"column:visitor_id;type:varchar(64);not null" json:"visitorId"`
	Name       string         `gorm:"column:name;type:varchar(100);not null;index" json:"name"`
	Category   *string        `gorm:"column:category;type:varchar(100)" json:"category"`
	Label      *string        `gorm:"column:label;type:varchar(200)" json:"label"`
	Value      *float64       `gorm:"column:value" json:"value"`
	Path       *string        `gorm:"column:path;type:text" json:"path"`
	Properties datatypes.JSON `gorm:"column:properties" json:"properties"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime;not null;index" json:"createdAt"`
}

func (EventModel) TableName() string {
	return "analytics_events"
}

func newID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (m *SessionModel) BeforeCreate(*gorm.DB) error  { newID(&m.ID); return nil }
func (m *PageViewModel) BeforeCreate(*gorm.DB) error { newID(&m.ID); return nil }
func (m *EventModel) BeforeCreate(*gorm.DB) error    { newID(&m.ID); return nil }

func All() []any {
	return []any{&SessionModel{}, &PageViewModel{}, &EventModel{}}
}
