/*
 * @module api/controllers/config_controller
 * @description 质量配置控制器，提供项目质量配置的读取和保存接口
 * @architecture MVC架构 - 控制器层
 * @documentReference ai_docs/quality_score_design.md
 * @stateFlow 请求接收 -> 配置服务处理 -> 响应返回
 * @rules 阈值校验失败返回400，读取无记录时返回默认配置
 * @dependencies transhub-service/service/config, github.com/go-chi/chi/v5, github.com/go-chi/render
 * @refs service/config/quality_config_service.go
 */

package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"transhub-service/service/config"
	"transhub-service/service/models"
)

// ConfigController 质量配置控制器
type ConfigController struct {
	configService *config.QualityConfigService
}

// NewConfigController 创建质量配置控制器实例
func NewConfigController(configService *config.QualityConfigService) *ConfigController {
	return &ConfigController{
		configService: configService,
	}
}

// GetProjectConfig 获取项目质量配置
// @Summary 获取项目质量配置
// @Description 根据项目ID获取质量配置，无存储记录时返回默认配置
// @Tags 质量配置
// @Produce json
// @Param project_id path string true "项目ID"
// @Success 200 {object} APIResponse{data=models.QualityConfig}
// @Failure 500 {object} APIResponse
// @Router /quality/configs/{project_id} [get]
func (c *ConfigController) GetProjectConfig(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "project_id")

	cfg, err := c.configService.GetProjectConfig(projectID)
	if err != nil {
		render.JSON(w, r, APIResponse{
			Status: http.StatusInternalServerError,
			Msg:    "获取项目质量配置失败",
		})
		return
	}

	render.JSON(w, r, APIResponse{
		Status: http.StatusOK,
		Msg:    "获取项目质量配置成功",
		Data:   cfg,
	})
}

// SaveProjectConfig 保存项目质量配置
// @Summary 保存项目质量配置
// @Description 保存项目质量配置，flag_threshold大于auto_approve_threshold时拒绝
// @Tags 质量配置
// @Accept json
// @Produce json
// @Param project_id path string true "项目ID"
// @Param config body models.QualityConfig true "质量配置信息"
// @Success 200 {object} APIResponse{data=models.QualityConfig}
// @Failure 400 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /quality/configs/{project_id} [put]
func (c *ConfigController) SaveProjectConfig(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "project_id")

	var cfg models.QualityConfig
	if err := render.DecodeJSON(r.Body, &cfg); err != nil {
		render.JSON(w, r, APIResponse{
			Status: http.StatusBadRequest,
			Msg:    "请求参数格式错误",
		})
		return
	}
	cfg.ProjectID = projectID

	if err := c.configService.SaveProjectConfig(&cfg); err != nil {
		var validationErr *config.ValidationError
		if errors.As(err, &validationErr) {
			render.JSON(w, r, APIResponse{
				Status: http.StatusBadRequest,
				Msg:    validationErr.Error(),
			})
			return
		}

		render.JSON(w, r, APIResponse{
			Status: http.StatusInternalServerError,
			Msg:    "保存项目质量配置失败",
		})
		return
	}

	render.JSON(w, r, APIResponse{
		Status: http.StatusOK,
		Msg:    "保存项目质量配置成功",
		Data:   cfg,
	})
}
