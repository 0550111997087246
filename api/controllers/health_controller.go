/*
 * @module api/controllers/health_controller
 * @description 健康检查控制器，提供存活检查和带数据库连通性检测的就绪检查
 * @architecture MVC架构 - 控制器层
 * @documentReference ai_docs/requirements.md
 * @stateFlow HTTP请求处理流程
 * @rules 存活检查不依赖任何下游；就绪检查要求数据库可达
 * @dependencies net/http, gorm.io/gorm
 * @refs api/routes.go
 */

package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
	"gorm.io/gorm"
)

// HealthController 健康检查控制器
type HealthController struct {
	db *gorm.DB
}

// NewHealthController 创建健康检查控制器实例
func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// HealthResponse 健康检查响应结构
type HealthResponse struct {
	Status    string    `json:"status" example:"ok"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-01T00:00:00Z"`
	Version   string    `json:"version" example:"1.0.0"`
	Service   string    `json:"service" example:"transhub-service"`
}

// Health 健康检查
// @Summary 健康检查
// @Description 检查服务进程存活状态，不依赖下游组件
// @Tags 系统
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Service:   "transhub-service",
	}

	render.JSON(w, r, response)
}

// Ready 就绪检查
// @Summary 就绪检查
// @Description 检查服务是否就绪，要求数据库连接可达
// @Tags 系统
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /ready [get]
func (c *HealthController) Ready(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "ready",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Service:   "transhub-service",
	}

	if err := c.pingDatabase(r); err != nil {
		response.Status = "unavailable"
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, response)
		return
	}

	render.JSON(w, r, response)
}

func (c *HealthController) pingDatabase(r *http.Request) error {
	if c.db == nil {
		return gorm.ErrInvalidDB
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(r.Context())
}
