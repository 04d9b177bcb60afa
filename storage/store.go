// Package storage 分析记录的持久化
package storage

import (
	"context"
	"errors"
	"time"

	"go-soilhealth/models"
)

// ErrNotFound 记录不存在或不属于该用户
var ErrNotFound = errors.New("analysis not found")

// TimestampLayout 记录时间戳格式
const TimestampLayout = "2006-01-02 15:04:05"

// AnalysisStore 分析记录存储
type AnalysisStore interface {
	Save(ctx context.Context, rec *models.AnalysisRecord) error
	Get(ctx context.Context, userID int, id string) (*models.AnalysisRecord, error)
	ListByUser(ctx context.Context, userID int, f ListFilter) ([]models.AnalysisRecord, int, error)
	Search(ctx context.Context, userID int, term string) ([]models.AnalysisRecord, error)
	Stats(ctx context.Context, userID int, since time.Time) (Stats, error)
}

// ListFilter 列表查询条件，空字段表示不过滤
type ListFilter struct {
	Page      int
	PageSize  int
	Location  string
	Crop      string
	StartDate string
	EndDate   string
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
	searchLimit     = 50
)

// Normalize 修正分页参数
func (f ListFilter) Normalize() ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = defaultPageSize
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}
	// 只给了日期时包含当天
	if len(f.EndDate) == len("2006-01-02") {
		f.EndDate += " 23:59:59"
	}
	return f
}

// Stats 仪表盘统计
type Stats struct {
	TotalAnalyses      int     `json:"totalAnalyses"`
	AnalysesSince      int     `json:"analysesSince"`
	AverageHealthScore float64 `json:"averageHealthScore"`
}
