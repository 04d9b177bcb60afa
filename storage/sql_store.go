package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-soilhealth/models"
)

// SQLStore 基于 database/sql 的实现，mysql 与 sqlite3 共用同一套 SQL
type SQLStore struct {
	DB *sql.DB
}

// NewSQLStore 创建 SQLStore
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{DB: db}
}

const selectColumns = "SELECT id, user_id, timestamp, result_json FROM soil_analyses"

// Save 保存一条分析记录
func (s *SQLStore) Save(ctx context.Context, rec *models.AnalysisRecord) error {
	payload, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	sample := rec.Result.Sample
	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO soil_analyses
		(id, user_id, timestamp, location, crop_type, soil_type, health_score, assessment_tier, result_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.UserID, rec.Timestamp, sample.Location, sample.CropType, string(sample.SoilType),
		rec.Result.HealthScore, string(rec.Result.AssessmentTier), string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

// Get 按 id 读取当前用户的记录
func (s *SQLStore) Get(ctx context.Context, userID int, id string) (*models.AnalysisRecord, error) {
	row := s.DB.QueryRowContext(ctx, selectColumns+" WHERE id = ? AND user_id = ?", id, userID)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListByUser 分页列出用户的记录，按时间倒序
func (s *SQLStore) ListByUser(ctx context.Context, userID int, f ListFilter) ([]models.AnalysisRecord, int, error) {
	f = f.Normalize()

	where := " WHERE user_id = ?"
	params := []interface{}{userID}
	if f.StartDate != "" && f.EndDate != "" {
		where += " AND timestamp BETWEEN ? AND ?"
		params = append(params, f.StartDate, f.EndDate)
	}
	if f.Location != "" {
		where += " AND location LIKE ?"
		params = append(params, "%"+f.Location+"%")
	}
	if f.Crop != "" {
		where += " AND crop_type LIKE ?"
		params = append(params, "%"+f.Crop+"%")
	}

	var total int
	if err := s.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM soil_analyses"+where, params...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count analyses: %w", err)
	}

	query := selectColumns + where + " ORDER BY timestamp DESC, id DESC LIMIT ? OFFSET ?"
	params = append(params, f.PageSize, (f.Page-1)*f.PageSize)
	records, err := s.query(ctx, query, params...)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// Search 在地点、作物、土壤类型和评价等级中模糊匹配
func (s *SQLStore) Search(ctx context.Context, userID int, term string) ([]models.AnalysisRecord, error) {
	like := "%" + strings.TrimSpace(term) + "%"
	query := selectColumns + `
		WHERE user_id = ?
		AND (location LIKE ? OR crop_type LIKE ? OR soil_type LIKE ? OR assessment_tier LIKE ?)
		ORDER BY timestamp DESC, id DESC LIMIT ?`
	return s.query(ctx, query, userID, like, like, like, like, searchLimit)
}

// Stats 统计总数、指定日期以来的数量和平均健康分
func (s *SQLStore) Stats(ctx context.Context, userID int, since time.Time) (Stats, error) {
	var (
		st  Stats
		avg sql.NullFloat64
	)
	err := s.DB.QueryRowContext(ctx,
		"SELECT COUNT(*), AVG(health_score) FROM soil_analyses WHERE user_id = ?", userID,
	).Scan(&st.TotalAnalyses, &avg)
	if err != nil {
		return Stats{}, fmt.Errorf("aggregate analyses: %w", err)
	}
	st.AverageHealthScore = avg.Float64

	err = s.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM soil_analyses WHERE user_id = ? AND timestamp >= ?", userID, since.Format(TimestampLayout),
	).Scan(&st.AnalysesSince)
	if err != nil {
		return Stats{}, fmt.Errorf("count recent analyses: %w", err)
	}
	return st, nil
}

func (s *SQLStore) query(ctx context.Context, query string, args ...interface{}) ([]models.AnalysisRecord, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	defer rows.Close()

	records := []models.AnalysisRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(sc scanner) (*models.AnalysisRecord, error) {
	var (
		rec     models.AnalysisRecord
		payload string
	)
	if err := sc.Scan(&rec.ID, &rec.UserID, &rec.Timestamp, &payload); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(payload), &rec.Result); err != nil {
		return nil, fmt.Errorf("decode result %s: %w", rec.ID, err)
	}
	return &rec, nil
}
