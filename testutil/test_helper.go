/*
 * @module testutil/test_helper
 * @description 测试工具和辅助函数
 * @architecture 测试基础设施 - 提供测试通用工具和数据工厂
 * @documentReference ai_docs/test_plan.md
 * @stateFlow 测试环境初始化 -> 测试数据创建 -> 测试执行 -> 清理资源
 * @rules 提供可重用的测试工具，确保测试环境的一致性
 * @dependencies gorm, sqlite, time
 * @refs service/models
 */

package testutil

import (
	"fmt"
	"math/rand"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"transhub-service/service/models"
)

// TestDB 测试数据库配置
type TestDB struct {
	DB *gorm.DB
}

// NewTestDB 创建测试数据库
func NewTestDB() *TestDB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(fmt.Sprintf("failed to connect test database: %v", err))
	}

	// 自动迁移所有模型
	err = db.AutoMigrate(
		&models.QualityConfig{},
		&models.QualityScoreCache{},
	)
	if err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}

	return &TestDB{DB: db}
}

// CleanDB 清理数据库
func (tdb *TestDB) CleanDB() {
	tables := []string{
		"quality_configs",
		"quality_score_caches",
	}

	for _, table := range tables {
		tdb.DB.Exec(fmt.Sprintf("DELETE FROM %s", table))
	}
}

// Close 关闭数据库连接
func (tdb *TestDB) Close() {
	if db, err := tdb.DB.DB(); err == nil {
		db.Close()
	}
}

// TestDataFactory 测试数据工厂
type TestDataFactory struct {
	DB *gorm.DB
}

// NewTestDataFactory 创建测试数据工厂
func NewTestDataFactory(db *gorm.DB) *TestDataFactory {
	return &TestDataFactory{DB: db}
}

// QualityConfigOption 质量配置选项函数类型
type QualityConfigOption func(*models.QualityConfig)

// CreateQualityConfig 创建测试质量配置
func (f *TestDataFactory) CreateQualityConfig(projectID string, opts ...QualityConfigOption) *models.QualityConfig {
	config := &models.QualityConfig{
		ID:                      generateID("cfg"),
		ProjectID:               projectID,
		ScoreAfterAITranslation: true,
		ScoreBeforeMerge:        false,
		AutoApproveThreshold:    80,
		FlagThreshold:           60,
		AIEvaluationEnabled:     true,
		CreatedAt:               time.Now(),
		UpdatedAt:               time.Now(),
	}

	// 应用选项
	for _, opt := range opts {
		opt(config)
	}

	err := f.DB.Create(config).Error
	if err != nil {
		panic(fmt.Sprintf("failed to create test quality config: %v", err))
	}

	return config
}

// ScoreCacheOption 评分缓存选项函数类型
type ScoreCacheOption func(*models.QualityScoreCache)

// CreateScoreCache 创建测试评分缓存记录
func (f *TestDataFactory) CreateScoreCache(translationID, projectID, fingerprint string, score int, opts ...ScoreCacheOption) *models.QualityScoreCache {
	record := &models.QualityScoreCache{
		ID:            generateID("qsc"),
		TranslationID: translationID,
		ProjectID:     projectID,
		Fingerprint:   fingerprint,
		Score:         score,
		ComputedAt:    time.Now(),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	// 应用选项
	for _, opt := range opts {
		opt(record)
	}

	err := f.DB.Create(record).Error
	if err != nil {
		panic(fmt.Sprintf("failed to create test score cache: %v", err))
	}

	return record
}

// NewCandidate 构造测试用关联候选条目
func NewCandidate(id string, confidence float64, translations ...models.CandidateTranslation) models.RelatedCandidate {
	return models.RelatedCandidate{
		ID:           id,
		Confidence:   confidence,
		Translations: translations,
	}
}

// generateID 生成带前缀的测试ID
func generateID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixNano(), generateSuffix())
}

// generateSuffix 生成随机后缀
func generateSuffix() string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 6)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
