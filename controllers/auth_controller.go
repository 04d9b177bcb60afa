package controllers

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"go-soilhealth/middleware"
	"go-soilhealth/models"
	"go-soilhealth/utils"
)

// AuthController 处理用户认证相关的请求
type AuthController struct {
	DB       *sql.DB
	Secret   string
	TokenTTL time.Duration
	Logger   *zap.Logger
}

// NewAuthController 创建一个新的AuthController实例
func NewAuthController(db *sql.DB, secret string, ttl time.Duration, logger *zap.Logger) *AuthController {
	return &AuthController{DB: db, Secret: secret, TokenTTL: ttl, Logger: logger}
}

// CredentialsRequest 注册和登录共用的请求体
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// AuthResponse 认证成功后返回的数据
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register 用户注册
func (c *AuthController) Register(ctx *gin.Context) {
	var req CredentialsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	// 检查用户名是否已存在
	var count int
	err := c.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE username = ?", req.Username).Scan(&count)
	if err != nil {
		c.Logger.Error("check username", zap.Error(err))
		utils.InternalServerError(ctx, "数据库查询失败")
		return
	}
	if count > 0 {
		utils.BadRequest(ctx, "用户名已存在")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.Logger.Error("hash password", zap.Error(err))
		utils.InternalServerError(ctx, "密码加密失败")
		return
	}

	now := time.Now().Format("2006-01-02 15:04:05")
	result, err := c.DB.ExecContext(ctx,
		"INSERT INTO users (username, password, created_at) VALUES (?, ?, ?)",
		req.Username, string(hashed), now,
	)
	if err != nil {
		c.Logger.Error("insert user", zap.Error(err))
		utils.InternalServerError(ctx, "注册失败")
		return
	}

	userID, err := result.LastInsertId()
	if err != nil {
		utils.InternalServerError(ctx, "获取用户ID失败")
		return
	}

	user := models.User{ID: int(userID), Username: req.Username, CreatedAt: now}
	c.respondWithToken(ctx, user, true)
}

// Login 用户登录
func (c *AuthController) Login(ctx *gin.Context) {
	var req CredentialsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	var (
		user   models.User
		hashed string
	)
	err := c.DB.QueryRowContext(ctx,
		"SELECT id, username, password FROM users WHERE username = ?",
		strings.TrimSpace(req.Username),
	).Scan(&user.ID, &user.Username, &hashed)
	if errors.Is(err, sql.ErrNoRows) {
		utils.Unauthorized(ctx, "用户名或密码错误")
		return
	}
	if err != nil {
		c.Logger.Error("load user", zap.Error(err))
		utils.InternalServerError(ctx, "数据库查询失败")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(req.Password)); err != nil {
		utils.Unauthorized(ctx, "用户名或密码错误")
		return
	}

	c.respondWithToken(ctx, user, false)
}

func (c *AuthController) respondWithToken(ctx *gin.Context, user models.User, created bool) {
	token, err := middleware.GenerateToken(user.ID, c.Secret, c.TokenTTL)
	if err != nil {
		c.Logger.Error("sign token", zap.Error(err))
		utils.InternalServerError(ctx, "生成令牌失败")
		return
	}

	resp := AuthResponse{Token: token, User: user}
	if created {
		utils.Created(ctx, resp)
		return
	}
	utils.Success(ctx, resp)
}
