package dto

import (
	"strings"
	"time"

	"jewelry_backend/internals/features/analytics/model"
)

// =========================
// Period
// =========================

const DefaultPeriod = "30d"

var periods = map[string]time.Duration{
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
	"90d": 90 * 24 * time.Hour,
	"1y":  365 * 24 * time.Hour,
}

// ParsePeriod maps the dashboard period query to a lookback window.
// Empty means DefaultPeriod.
func ParsePeriod(s string) (time.Duration, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		s = DefaultPeriod
	}
	d, ok := periods[s]
	return d, ok
}

// =========================
// Ingestion requests
// =========================

type SessionRequest struct {
	SessionKey      string  `json:"sessionKey" validate:"required,max=64"`
	VisitorID       string  `json:"visitorId" validate:"required,max=64"`
	Country         *string `json:"country" validate:"omitempty,max=64"`
	Region          *string `json:"region" validate:"omitempty,max=64"`
	City            *string `json:"city" validate:"omitempty,max=64"`
	DeviceType      *string `json:"deviceType" validate:"omitempty,oneof=desktop mobile tablet tv other"`
	Browser         *string `json:"browser" validate:"omitempty,max=64"`
	OS              *string `json:"os" validate:"omitempty,max=64"`
	Referrer        *string `json:"referrer" validate:"omitempty,max=2000"`
	LandingPage     *string `json:"landingPage" validate:"omitempty,max=2000"`
	IsBounce        *bool   `json:"isBounce"`
	DurationSeconds int     `json:"durationSeconds" validate:"min=0"`
	Converted       bool    `json:"converted"`
}

func (r *SessionRequest) ToModel() *model.SessionModel {
	bounce := true
	if r.IsBounce != nil {
		bounce = *r.IsBounce
	}
	return &model.SessionModel{
		SessionKey:      strings.TrimSpace(r.SessionKey),
		VisitorID:       strings.TrimSpace(r.VisitorID),
		Country:         Trimmed(r.Country),
		Region:          Trimmed(r.Region),
		City:            Trimmed(r.City),
		DeviceType:      Trimmed(r.DeviceType),
		Browser:         Trimmed(r.Browser),
		OS:              Trimmed(r.OS),
		Referrer:        Trimmed(r.Referrer),
		LandingPage:     Trimmed(r.LandingPage),
		IsBounce:        bounce,
		DurationSeconds: r.DurationSeconds,
		Converted:       r.Converted,
	}
}

type PageViewRequest struct {
	SessionKey string  `json:"sessionKey" validate:"required,max=64"`
	VisitorID  string  `json:"visitorId" validate:"required,max=64"`
	Path       string  `json:"path" validate:"required,max=2000"`
	Title      *string `json:"title" validate:"omitempty,max=300"`
	TimeOnPage int     `json:"timeOnPage" validate:"min=0"`
}

func (r *PageViewRequest) ToModel() *model.PageViewModel {
	return &model.PageViewModel{
		SessionKey: strings.TrimSpace(r.SessionKey),
		VisitorID:  strings.TrimSpace(r.VisitorID),
		Path:       strings.TrimSpace(r.Path),
		Title:      Trimmed(r.Title),
		TimeOnPage: r.TimeOnPage,
	}
}

// ConversionEvent marks the owning session as converted.
const ConversionEvent = "conversion"

type EventRequest struct {
	SessionKey string         `json:"sessionKey" validate:"required,max=64"`
	VisitorID  string         `json:"visitorId" validate:"required,max=64"`
	Name       string         `json:"name" validate:"required,max=100"`
	Category   *string        `json:"category" validate:"omitempty,max=100"`
	Label      *string        `json:"label" validate:"omitempty,max=200"`
	Value      *float64       `json:"value"`
	Path       *string        `json:"path" validate:"omitempty,max=2000"`
	Properties map[string]any `json:"properties"`
}

// Trimmed returns nil for nil or blank input.
func Trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// =========================
// Reports
// =========================

type Breakdown struct {
	Name  string `gorm:"column:name" json:"name"`
	Count int64  `gorm:"column:count" json:"count"`
}

type DailyBucket struct {
	Date     string `gorm:"column:day" json:"date"`
	Visitors int64  `gorm:"column:visitors" json:"visitors"`
	Sessions int64  `gorm:"column:sessions" json:"sessions"`
}

type Overview struct {
	TotalSessions  int64   `json:"totalSessions"`
	UniqueVisitors int64   `json:"uniqueVisitors"`
	PageViews      int64   `json:"pageViews"`
	BounceRate     float64 `json:"bounceRate"`
	AvgTimeOnPage  float64 `json:"avgTimeOnPage"`
	Conversions    int64   `json:"conversions"`
	ConversionRate float64 `json:"conversionRate"`
}

type DashboardResponse struct {
	Period        string        `json:"period"`
	StartDate     time.Time     `json:"startDate"`
	EndDate       time.Time     `json:"endDate"`
	Overview      Overview      `json:"overview"`
	TopCountries  []Breakdown   `json:"topCountries"`
	TopRegions    []Breakdown   `json:"topRegions"`
	DeviceTypes   []Breakdown   `json:"deviceTypes"`
	Browsers      []Breakdown   `json:"browsers"`
	TopPages      []Breakdown   `json:"topPages"`
	TopReferrers  []Breakdown   `json:"topReferrers"`
	DailyVisitors []DailyBucket `json:"dailyVisitors"`
}

type RealtimeResponse struct {
	Since          time.Time          `json:"since"`
	ActiveVisitors int64              `json:"activeVisitors"`
	PageViews      int64              `json:"pageViews"`
	TopPages       []Breakdown        `json:"topPages"`
	RecentEvents   []model.EventModel `json:"recentEvents"`
}
