package storage

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-soilhealth/analyzer"
	"go-soilhealth/config"
	"go-soilhealth/models"
)

func newTestStore(t *testing.T) *SQLStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := sql.Open(config.DriverSQLite, dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, config.Migrate(db, config.DriverSQLite, zap.NewNop()))
	return NewSQLStore(db)
}

func newRecord(t *testing.T, id string, userID int, ts string, mutate func(*models.SoilSample)) *models.AnalysisRecord {
	t.Helper()
	sample := models.SoilSample{
		PH: 6.5, Nitrogen: 45, Phosphorus: 35, Potassium: 50, OrganicMatter: 3.5,
		Moisture: 30, Temperature: 20, SoilType: models.SoilTypeLoamy,
		Location: "North Field", CropType: "Corn",
		Iron: 5, Zinc: 3, Copper: 1, Manganese: 4,
		SandPercentage: 40, SiltPercentage: 40, ClayPercentage: 20,
	}
	if mutate != nil {
		mutate(&sample)
	}
	result, err := analyzer.Analyze(sample)
	require.NoError(t, err)
	return &models.AnalysisRecord{ID: id, UserID: userID, Timestamp: ts, Result: *result}
}

func TestSaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := newRecord(t, "ANL-1", 1, "2024-03-01 10:00:00", nil)
	require.NoError(t, store.Save(ctx, rec))

	got, err := store.Get(ctx, 1, "ANL-1")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Timestamp, got.Timestamp)
	assert.Equal(t, rec.Result.HealthScore, got.Result.HealthScore)
	assert.Equal(t, rec.Result.Sample, got.Result.Sample)
	assert.Equal(t, rec.Result.Recommendations, got.Result.Recommendations)
	assert.Equal(t, rec.Result.SeasonalRecommendations, got.Result.SeasonalRecommendations)
}

func TestGetOtherUsersRecord(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, newRecord(t, "ANL-1", 1, "2024-03-01 10:00:00", nil)))

	_, err := store.Get(ctx, 2, "ANL-1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Get(ctx, 1, "ANL-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newRecord(t, "ANL-1", 1, "2024-01-05 08:00:00", nil)))
	require.NoError(t, store.Save(ctx, newRecord(t, "ANL-2", 1, "2024-02-10 08:00:00", func(s *models.SoilSample) {
		s.Location = "South Field"
		s.CropType = "Wheat"
	})))
	require.NoError(t, store.Save(ctx, newRecord(t, "ANL-3", 1, "2024-03-15 08:00:00", nil)))
	require.NoError(t, store.Save(ctx, newRecord(t, "ANL-4", 2, "2024-03-20 08:00:00", nil)))

	records, total, err := store.ListByUser(ctx, 1, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, records, 3)
	assert.Equal(t, "ANL-3", records[0].ID)
	assert.Equal(t, "ANL-1", records[2].ID)

	records, total, err = store.ListByUser(ctx, 1, ListFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, records, 1)
	assert.Equal(t, "ANL-1", records[0].ID)

	records, total, err = store.ListByUser(ctx, 1, ListFilter{Location: "south"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "ANL-2", records[0].ID)

	records, _, err = store.ListByUser(ctx, 1, ListFilter{Crop: "Corn"})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, total, err = store.ListByUser(ctx, 1, ListFilter{StartDate: "2024-02-01", EndDate: "2024-03-15"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "ANL-3", records[0].ID)
	assert.Equal(t, "ANL-2", records[1].ID)
}

func TestListByUserEmpty(t *testing.T) {
	store := newTestStore(t)
	records, total, err := store.ListByUser(context.Background(), 9, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestSearch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newRecord(t, "ANL-1", 1, "2024-01-05 08:00:00", nil)))
	require.NoError(t, store.Save(ctx, newRecord(t, "ANL-2", 1, "2024-02-10 08:00:00", func(s *models.SoilSample) {
		s.SoilType = models.SoilTypeClay
		s.Location = "Orchard"
	})))

	records, err := store.Search(ctx, 1, "CLAY")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ANL-2", records[0].ID)

	records, err = store.Search(ctx, 1, "Excellent")
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = store.Search(ctx, 2, "Orchard")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStats(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	empty, err := store.Stats(ctx, 1, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, Stats{}, empty)

	require.NoError(t, store.Save(ctx, newRecord(t, "ANL-1", 1, "2024-02-05 08:00:00", nil)))
	require.NoError(t, store.Save(ctx, newRecord(t, "ANL-2", 1, "2024-03-10 08:00:00", func(s *models.SoilSample) {
		s.Manganese = 100
	})))

	st, err := store.Stats(ctx, 1, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, st.TotalAnalyses)
	assert.Equal(t, 1, st.AnalysesSince)
	// 10 和 (8*10+4)/9
	assert.InDelta(t, (10.0+84.0/9.0)/2, st.AverageHealthScore, 1e-9)
}

func TestListFilterNormalize(t *testing.T) {
	f := ListFilter{Page: 0, PageSize: 500, EndDate: "2024-01-31"}.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, maxPageSize, f.PageSize)
	assert.Equal(t, "2024-01-31 23:59:59", f.EndDate)

	f = ListFilter{EndDate: "2024-01-31 12:00:00"}.Normalize()
	assert.Equal(t, defaultPageSize, f.PageSize)
	assert.Equal(t, "2024-01-31 12:00:00", f.EndDate)
}
