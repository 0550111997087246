/*
 * @module service/config/quality_config_service
 * @description 项目质量配置服务，提供配置读取（含默认值回退）和带校验的配置保存
 * @architecture 分层架构 - 业务服务层
 * @documentReference ai_docs/quality_score_design.md
 * @stateFlow 配置读取 -> 无记录回退默认值 / 配置保存 -> 阈值校验 -> 入库
 * @rules 保存时拒绝 flag_threshold > auto_approve_threshold 的配置；分类器本身不做该校验
 * @dependencies gorm.io/gorm, github.com/spf13/cast
 * @refs service/models/quality_models.go, service/quality/threshold.go
 */

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cast"
	"gorm.io/gorm"

	"transhub-service/service/models"
)

// ValidationError 配置校验错误
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("配置校验失败: %s: %s", e.Field, e.Message)
}

// QualityConfigService 项目质量配置服务
type QualityConfigService struct {
	db *gorm.DB
}

// NewQualityConfigService 创建项目质量配置服务实例
func NewQualityConfigService(db *gorm.DB) *QualityConfigService {
	return &QualityConfigService{db: db}
}

// GetProjectConfig 获取项目质量配置，无存储记录时返回默认配置
func (s *QualityConfigService) GetProjectConfig(projectID string) (*models.QualityConfig, error) {
	if projectID == "" {
		return nil, errors.New("project_id不能为空")
	}

	var config models.QualityConfig
	err := s.db.Where("project_id = ?", projectID).First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return defaultConfigFromEnv(projectID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询项目质量配置失败: %w", err)
	}
	return &config, nil
}

// SaveProjectConfig 保存项目质量配置，保存前校验阈值
func (s *QualityConfigService) SaveProjectConfig(config *models.QualityConfig) error {
	if config.ProjectID == "" {
		return &ValidationError{Field: "project_id", Message: "不能为空"}
	}
	if config.AutoApproveThreshold < 0 || config.AutoApproveThreshold > 100 {
		return &ValidationError{Field: "auto_approve_threshold", Message: "必须在[0,100]范围内"}
	}
	if config.FlagThreshold < 0 || config.FlagThreshold > 100 {
		return &ValidationError{Field: "flag_threshold", Message: "必须在[0,100]范围内"}
	}
	if config.FlagThreshold > config.AutoApproveThreshold {
		return &ValidationError{Field: "flag_threshold", Message: "不能大于auto_approve_threshold"}
	}

	var existing models.QualityConfig
	err := s.db.Where("project_id = ?", config.ProjectID).First(&existing).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Create(config).Error; err != nil {
			return fmt.Errorf("创建项目质量配置失败: %w", err)
		}
	case err != nil:
		return fmt.Errorf("查询项目质量配置失败: %w", err)
	default:
		config.ID = existing.ID
		config.CreatedAt = existing.CreatedAt
		if err := s.db.Save(config).Error; err != nil {
			return fmt.Errorf("更新项目质量配置失败: %w", err)
		}
	}

	return nil
}

// defaultConfigFromEnv 构造默认配置，阈值允许通过环境变量覆盖；
// 覆盖后的阈值组合若倒置（flag > auto_approve）则整体回退到内置默认值
func defaultConfigFromEnv(projectID string) *models.QualityConfig {
	config := models.DefaultQualityConfig(projectID)

	if val := os.Getenv("QUALITY_AUTO_APPROVE_THRESHOLD"); val != "" {
		if threshold := cast.ToInt(val); threshold >= 0 && threshold <= 100 {
			config.AutoApproveThreshold = threshold
		}
	}
	if val := os.Getenv("QUALITY_FLAG_THRESHOLD"); val != "" {
		if threshold := cast.ToInt(val); threshold >= 0 && threshold <= 100 {
			config.FlagThreshold = threshold
		}
	}

	if config.FlagThreshold > config.AutoApproveThreshold {
		slog.Warn("环境变量阈值倒置，回退到内置默认阈值",
			"auto_approve_threshold", config.AutoApproveThreshold,
			"flag_threshold", config.FlagThreshold)
		config.AutoApproveThreshold = models.DefaultAutoApproveThreshold
		config.FlagThreshold = models.DefaultFlagThreshold
	}

	return config
}
