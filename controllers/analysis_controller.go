package controllers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-soilhealth/analyzer"
	"go-soilhealth/middleware"
	"go-soilhealth/models"
	"go-soilhealth/report"
	"go-soilhealth/storage"
	"go-soilhealth/utils"
)

// AnalysisController 处理土壤分析相关的请求
type AnalysisController struct {
	Store  storage.AnalysisStore
	Logger *zap.Logger
	Now    func() time.Time
}

// NewAnalysisController 创建一个新的AnalysisController实例
func NewAnalysisController(store storage.AnalysisStore, logger *zap.Logger) *AnalysisController {
	return &AnalysisController{Store: store, Logger: logger, Now: time.Now}
}

// TextureRequest 质地分类请求
type TextureRequest struct {
	SandPercentage float64 `json:"sandPercentage"`
	SiltPercentage float64 `json:"siltPercentage"`
	ClayPercentage float64 `json:"clayPercentage"`
}

// TextureResponse 质地分类结果
type TextureResponse struct {
	TextureClass string `json:"textureClass"`
	Valid        bool   `json:"valid"`
}

// CompareResponse 两次分析的对比
type CompareResponse struct {
	CurrentID  string                   `json:"currentId"`
	PreviousID string                   `json:"previousId"`
	Rows       []analyzer.ComparisonRow `json:"rows"`
}

// Analyze 只分析不保存
func (c *AnalysisController) Analyze(ctx *gin.Context) {
	result, ok := c.analyzeRequest(ctx)
	if !ok {
		return
	}
	utils.Success(ctx, result)
}

// ClassifyTexture 根据砂粒、粉粒、黏粒百分比判断质地
func (c *AnalysisController) ClassifyTexture(ctx *gin.Context) {
	var req TextureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	class := analyzer.ClassifyTexture(req.SandPercentage, req.SiltPercentage, req.ClayPercentage)
	utils.Success(ctx, TextureResponse{TextureClass: string(class), Valid: class.Valid()})
}

// CreateAnalysis 分析并保存到当前用户名下
func (c *AnalysisController) CreateAnalysis(ctx *gin.Context) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return
	}
	result, ok := c.analyzeRequest(ctx)
	if !ok {
		return
	}

	id, err := utils.NewAnalysisID()
	if err != nil {
		c.Logger.Error("generate analysis id", zap.Error(err))
		utils.InternalServerError(ctx, "生成编号失败")
		return
	}

	rec := &models.AnalysisRecord{
		ID:        id,
		UserID:    userID,
		Timestamp: c.Now().Format(storage.TimestampLayout),
		Result:    *result,
	}
	if err := c.Store.Save(ctx, rec); err != nil {
		c.Logger.Error("save analysis", zap.String("analysis_id", id), zap.Error(err))
		utils.InternalServerError(ctx, "保存分析失败")
		return
	}

	c.Logger.Info("analysis saved",
		zap.String("analysis_id", id),
		zap.Int("user_id", userID),
		zap.Float64("health_score", result.HealthScore),
	)
	utils.Created(ctx, rec)
}

// ListAnalyses 分页列出当前用户的分析记录
func (c *AnalysisController) ListAnalyses(ctx *gin.Context) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "10"))
	filter := storage.ListFilter{
		Page:      page,
		PageSize:  pageSize,
		Location:  ctx.Query("location"),
		Crop:      ctx.Query("crop"),
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
	}.Normalize()

	records, total, err := c.Store.ListByUser(ctx, userID, filter)
	if err != nil {
		c.Logger.Error("list analyses", zap.Error(err))
		utils.InternalServerError(ctx, "获取分析记录失败")
		return
	}
	utils.SuccessWithPagination(ctx, records, total, filter.Page, filter.PageSize)
}

// SearchAnalyses 按关键字搜索
func (c *AnalysisController) SearchAnalyses(ctx *gin.Context) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return
	}
	term := strings.TrimSpace(ctx.Query("q"))
	if term == "" {
		utils.BadRequest(ctx, "缺少搜索关键字")
		return
	}

	records, err := c.Store.Search(ctx, userID, term)
	if err != nil {
		c.Logger.Error("search analyses", zap.Error(err))
		utils.InternalServerError(ctx, "搜索失败")
		return
	}
	utils.Success(ctx, records)
}

// Stats 仪表盘统计，本月起算
func (c *AnalysisController) Stats(ctx *gin.Context) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return
	}
	now := c.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats, err := c.Store.Stats(ctx, userID, monthStart)
	if err != nil {
		c.Logger.Error("analysis stats", zap.Error(err))
		utils.InternalServerError(ctx, "获取统计失败")
		return
	}
	utils.Success(ctx, stats)
}

// GetAnalysis 获取单条分析记录
func (c *AnalysisController) GetAnalysis(ctx *gin.Context) {
	rec, ok := c.loadRecord(ctx, ctx.Param("id"))
	if !ok {
		return
	}
	utils.Success(ctx, rec)
}

// CompareAnalyses 对比两次分析
func (c *AnalysisController) CompareAnalyses(ctx *gin.Context) {
	current, ok := c.loadRecord(ctx, ctx.Param("id"))
	if !ok {
		return
	}
	previous, ok := c.loadRecord(ctx, ctx.Param("otherId"))
	if !ok {
		return
	}
	utils.Success(ctx, CompareResponse{
		CurrentID:  current.ID,
		PreviousID: previous.ID,
		Rows:       analyzer.Compare(&current.Result, &previous.Result),
	})
}

// DownloadReport 导出 PDF 或 Excel 报告
func (c *AnalysisController) DownloadReport(ctx *gin.Context) {
	format, err := report.ParseFormat(ctx.Query("format"))
	if err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	rec, ok := c.loadRecord(ctx, ctx.Param("id"))
	if !ok {
		return
	}

	ctx.Header("Content-Type", format.ContentType())
	ctx.Header("Content-Disposition", `attachment; filename="`+format.FileName(rec)+`"`)

	switch format {
	case report.FormatXLSX:
		err = report.WriteWorkbook(ctx.Writer, rec)
	default:
		err = report.WritePDF(ctx.Writer, rec)
	}
	if err != nil {
		c.Logger.Error("render report", zap.String("analysis_id", rec.ID), zap.String("format", string(format)), zap.Error(err))
		_ = ctx.Error(err)
	}
}

func (c *AnalysisController) analyzeRequest(ctx *gin.Context) (*models.SoilAnalysisResult, bool) {
	var sample models.SoilSample
	if err := ctx.ShouldBindJSON(&sample); err != nil {
		utils.BadRequest(ctx, err.Error())
		return nil, false
	}

	result, err := analyzer.Analyze(sample)
	if err != nil {
		if errors.Is(err, models.ErrUnknownSeason) {
			utils.BadRequest(ctx, err.Error())
			return nil, false
		}
		c.Logger.Error("analyze sample", zap.Error(err))
		utils.InternalServerError(ctx, "分析失败")
		return nil, false
	}
	return result, true
}

func (c *AnalysisController) requireUser(ctx *gin.Context) (int, bool) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		utils.Unauthorized(ctx, "未登录")
		return 0, false
	}
	return userID, true
}

func (c *AnalysisController) loadRecord(ctx *gin.Context, id string) (*models.AnalysisRecord, bool) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return nil, false
	}
	rec, err := c.Store.Get(ctx, userID, id)
	if errors.Is(err, storage.ErrNotFound) {
		utils.NotFound(ctx, "分析记录不存在")
		return nil, false
	}
	if err != nil {
		c.Logger.Error("load analysis", zap.String("analysis_id", id), zap.Error(err))
		utils.InternalServerError(ctx, "获取分析记录失败")
		return nil, false
	}
	return rec, true
}
