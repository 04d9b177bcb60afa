package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构 {code, message, data}
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ResponseWithPagination 带分页的响应结构
type ResponseWithPagination struct {
	Code        int    `json:"code"`
	Message     string `json:"message"`
	Data        any    `json:"data,omitempty"`
	TotalCount  int    `json:"totalCount"`
	CurrentPage int    `json:"currentPage"`
	PageSize    int    `json:"pageSize"`
}

// Success 200
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: http.StatusOK, Message: "success", Data: data})
}

// SuccessWithPagination 200，附带分页信息
func SuccessWithPagination(c *gin.Context, data any, totalCount, currentPage, pageSize int) {
	c.JSON(http.StatusOK, ResponseWithPagination{
		Code:        http.StatusOK,
		Message:     "success",
		Data:        data,
		TotalCount:  totalCount,
		CurrentPage: currentPage,
		PageSize:    pageSize,
	})
}

// Created 201
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Code: http.StatusCreated, Message: "created", Data: data})
}

// Fail 返回不带数据的错误响应
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Code: status, Message: message})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

// InternalServerError 500
func InternalServerError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, message)
}
