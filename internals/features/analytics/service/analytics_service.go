package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"jewelry_backend/internals/features/analytics/dto"
	"jewelry_backend/internals/features/analytics/model"

	"github.com/bytedance/sonic"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	topLimit       = 10
	recentEvents   = 20
	realtimeWindow = time.Hour
)

type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

// dayExpr buckets created_at by calendar day (UTC) for the active dialect.
func (s *AnalyticsService) dayExpr() string {
	if s.DB.Dialector.Name() == "postgres" {
		return "TO_CHAR(created_at, 'YYYY-MM-DD')"
	}
	return "strftime('%Y-%m-%d', created_at)"
}

func percent(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*10000) / 100
}

// =========================
// Dashboard
// =========================

type sessionTotals struct {
	Total       int64 `gorm:"column:total"`
	Unique      int64 `gorm:"column:unique_visitors"`
	Bounces     int64 `gorm:"column:bounces"`
	Conversions int64 `gorm:"column:conversions"`
}

// Dashboard recomputes every aggregate over rows created in [since, now].
// The independent queries run concurrently on the pool.
func (s *AnalyticsService) Dashboard(ctx context.Context, period string, since, now time.Time) (*dto.DashboardResponse, error) {
	out := &dto.DashboardResponse{Period: period, StartDate: since, EndDate: now}

	sessions := func(ctx context.Context) *gorm.DB {
		return s.DB.WithContext(ctx).Model(&model.SessionModel{}).Where("created_at >= ?", since)
	}
	views := func(ctx context.Context) *gorm.DB {
		return s.DB.WithContext(ctx).Model(&model.PageViewModel{}).Where("created_at >= ?", since)
	}

	var totals sessionTotals
	var avgTime struct {
		Avg float64 `gorm:"column:avg_time"`
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sessions(gctx).Select(
			"COUNT(*) AS total, " +
				"COUNT(DISTINCT visitor_id) AS unique_visitors, " +
				"COALESCE(SUM(CASE WHEN is_bounce THEN 1 ELSE 0 END), 0) AS bounces, " +
				"COALESCE(SUM(CASE WHEN converted THEN 1 ELSE 0 END), 0) AS conversions",
		).Scan(&totals).Error
	})
	g.Go(func() error {
		return views(gctx).Count(&out.Overview.PageViews).Error
	})
	g.Go(func() error {
		return views(gctx).Select("COALESCE(AVG(time_on_page), 0) AS avg_time").Scan(&avgTime).Error
	})

	breakdowns := []struct {
		dst    *[]dto.Breakdown
		column string
		scope  func(context.Context) *gorm.DB
	}{
		{&out.TopCountries, "country", sessions},
		{&out.TopRegions, "region", sessions},
		{&out.DeviceTypes, "device_type", sessions},
		{&out.Browsers, "browser", sessions},
		{&out.TopReferrers, "referrer", sessions},
		{&out.TopPages, "path", views},
	}
	for _, b := range breakdowns {
		g.Go(func() error {
			rows, err := topBy(b.scope(gctx), b.column)
			if err != nil {
				return fmt.Errorf("%s breakdown: %w", b.column, err)
			}
			*b.dst = rows
			return nil
		})
	}

	g.Go(func() error {
		day := s.dayExpr()
		out.DailyVisitors = []dto.DailyBucket{}
		return sessions(gctx).
			Select(day + " AS day, COUNT(DISTINCT visitor_id) AS visitors, COUNT(*) AS sessions").
			Group(day).
			Order("day ASC").
			Scan(&out.DailyVisitors).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.Overview.TotalSessions = totals.Total
	out.Overview.UniqueVisitors = totals.Unique
	out.Overview.Conversions = totals.Conversions
	out.Overview.BounceRate = percent(totals.Bounces, totals.Total)
	out.Overview.ConversionRate = percent(totals.Conversions, totals.Total)
	out.Overview.AvgTimeOnPage = math.Round(avgTime.Avg*100) / 100
	return out, nil
}

func topBy(scope *gorm.DB, column string) ([]dto.Breakdown, error) {
	rows := []dto.Breakdown{}
	err := scope.
		Select(column + " AS name, COUNT(*) AS count").
		Where(column + " IS NOT NULL AND " + column + " <> ''").
		Group(column).
		Order("count DESC, name ASC").
		Limit(topLimit).
		Scan(&rows).Error
	return rows, err
}

// =========================
// Realtime
// =========================

func (s *AnalyticsService) Realtime(ctx context.Context, now time.Time) (*dto.RealtimeResponse, error) {
	since := now.Add(-realtimeWindow)
	out := &dto.RealtimeResponse{Since: since, RecentEvents: []model.EventModel{}}

	views := func(ctx context.Context) *gorm.DB {
		return s.DB.WithContext(ctx).Model(&model.PageViewModel{}).Where("created_at >= ?", since)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return views(gctx).Distinct("visitor_id").Count(&out.ActiveVisitors).Error
	})
	g.Go(func() error {
		return views(gctx).Count(&out.PageViews).Error
	})
	g.Go(func() error {
		rows, err := topBy(views(gctx), "path")
		out.TopPages = rows
		return err
	})
	g.Go(func() error {
		return s.DB.WithContext(gctx).
			Where("created_at >= ?", since).
			Order("created_at DESC").
			Limit(recentEvents).
			Find(&out.RecentEvents).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// =========================
// Ingestion
// =========================

// RecordSession inserts a session or, when the key is known, refreshes its
// engagement columns.
func (s *AnalyticsService) RecordSession(ctx context.Context, req *dto.SessionRequest) (*model.SessionModel, error) {
	m := req.ToModel()
	db := s.DB.WithContext(ctx)

	updates := []string{"duration_seconds", "updated_at"}
	if req.IsBounce != nil {
		updates = append(updates, "is_bounce")
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_key"}},
		DoUpdates: clause.AssignmentColumns(updates),
	}).Create(m).Error
	if err != nil {
		return nil, err
	}

	if req.Converted {
		if err := s.markConverted(db, m.SessionKey); err != nil {
			return nil, err
		}
	}

	var saved model.SessionModel
	if err := db.Where("session_key = ?", m.SessionKey).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// RecordPageView stores the view; a second view in a session clears its
// bounce flag.
func (s *AnalyticsService) RecordPageView(ctx context.Context, req *dto.PageViewRequest) (*model.PageViewModel, error) {
	m := req.ToModel()
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&model.PageViewModel{}).Where("session_key = ?", m.SessionKey).Count(&n).Error; err != nil {
			return err
		}
		if n < 2 {
			return nil
		}
		return tx.Model(&model.SessionModel{}).
			Where("session_key = ? AND is_bounce = ?", m.SessionKey, true).
			Update("is_bounce", false).Error
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *AnalyticsService) RecordEvent(ctx context.Context, req *dto.EventRequest) (*model.EventModel, error) {
	m := &model.EventModel{
		SessionKey: req.SessionKey,
		VisitorID:  req.VisitorID,
		Name:       req.Name,
		Category:   dto.Trimmed(req.Category),
		Label:      dto.Trimmed(req.Label),
		Value:      req.Value,
		Path:       dto.Trimmed(req.Path),
	}
	if len(req.Properties) > 0 {
		raw, err := sonic.Marshal(req.Properties)
		if err != nil {
			return nil, err
		}
		m.Properties = datatypes.JSON(raw)
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if m.Name == dto.ConversionEvent {
			return s.markConverted(tx, m.SessionKey)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *AnalyticsService) markConverted(db *gorm.DB, sessionKey string) error {
	return db.Model(&model.SessionModel{}).
		Where("session_key = ?", sessionKey).
		Update("converted", true).Error
}
