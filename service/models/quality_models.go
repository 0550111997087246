/*
 * @module service/models/quality_models
 * @description 翻译质量模型，包含项目质量配置、质量评分缓存记录和工作流分类等模型
 * @architecture 数据模型层
 * @documentReference ai_docs/quality_score_design.md
 * @stateFlow 质量配置加载 -> 评分缓存校验 -> 评估执行 -> 阈值分类 -> 工作流事件
 * @rules 质量配置保存时必须满足 flag_threshold <= auto_approve_threshold
 * @dependencies gorm.io/gorm, github.com/google/uuid, github.com/lib/pq
 * @refs service/quality/, service/config/
 */

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Classification 质量评分的工作流分类结果
type Classification string

const (
	ClassificationAutoApprove Classification = "auto_approve" // 自动批准
	ClassificationDefault     Classification = "default"      // 保持现状
	ClassificationFlag        Classification = "flag"         // 标记人工复核
)

// 默认质量配置阈值
const (
	DefaultAutoApproveThreshold = 80
	DefaultFlagThreshold        = 60
)

// QualityConfig 项目级翻译质量配置模型
type QualityConfig struct {
	ID                      string         `gorm:"type:varchar(50);primaryKey" json:"id"`
	ProjectID               string         `gorm:"type:varchar(50);not null;uniqueIndex" json:"project_id"`
	ScoreAfterAITranslation bool           `gorm:"default:true" json:"score_after_ai_translation"`
	ScoreBeforeMerge        bool           `gorm:"default:false" json:"score_before_merge"`
	AutoApproveThreshold    int            `gorm:"default:80" json:"auto_approve_threshold"` // [0,100]
	FlagThreshold           int            `gorm:"default:60" json:"flag_threshold"`         // [0,100]
	AIEvaluationEnabled     bool           `gorm:"default:true" json:"ai_evaluation_enabled"`
	AIEvaluationProvider    *string        `gorm:"type:varchar(50)" json:"ai_evaluation_provider,omitempty"`
	AIEvaluationModel       *string        `gorm:"type:varchar(100)" json:"ai_evaluation_model,omitempty"`
	TargetLanguages         pq.StringArray `gorm:"type:text[]" json:"target_languages,omitempty"` // 项目目标语言列表
	CreatedAt               time.Time      `json:"created_at"`
	UpdatedAt               time.Time      `json:"updated_at"`
}

// TableName 指定表名
func (QualityConfig) TableName() string {
	return "quality_configs"
}

// BeforeCreate 创建前钩子
func (c *QualityConfig) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// DefaultQualityConfig 返回项目无存储配置时使用的默认配置
func DefaultQualityConfig(projectID string) *QualityConfig {
	return &QualityConfig{
		ProjectID:               projectID,
		ScoreAfterAITranslation: true,
		ScoreBeforeMerge:        false,
		AutoApproveThreshold:    DefaultAutoApproveThreshold,
		FlagThreshold:           DefaultFlagThreshold,
		AIEvaluationEnabled:     true,
	}
}

// QualityScoreCache 质量评分缓存记录模型
// 以翻译标识加内容指纹为键，指纹为16位十六进制字符串
type QualityScoreCache struct {
	ID            string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	TranslationID string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"translation_id"`
	ProjectID     string    `gorm:"type:varchar(50);index" json:"project_id"`
	Fingerprint   string    `gorm:"type:varchar(16);not null" json:"fingerprint"`
	Score         int       `json:"score"` // 质量评分 [0,100]
	ComputedAt    time.Time `json:"computed_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName 指定表名
func (QualityScoreCache) TableName() string {
	return "quality_score_caches"
}

// BeforeCreate 创建前钩子
func (c *QualityScoreCache) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
