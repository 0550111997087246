/*
 * @module service/quality/quality_service
 * @description 翻译质量服务，编排指纹计算、缓存校验、外部评估、阈值分类和工作流事件发布
 * @architecture 分层架构 - 业务服务层
 * @documentReference ai_docs/quality_score_design.md
 * @stateFlow 指纹计算 -> 缓存查找(Redis->数据库) -> 校验 -> 命中返回/未命中评估 -> 持久化 -> 分类 -> 事件发布
 * @rules 缓存热层和事件发布失败不阻断评分主流程，只记录日志
 * @dependencies gorm.io/gorm, transhub-service/client/connectors, transhub-service/service/config
 * @refs service/quality/hasher.go, service/quality/threshold.go, service/scheduler/
 */

package quality

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"transhub-service/client/connectors"
	"transhub-service/service/config"
	"transhub-service/service/metrics"
	"transhub-service/service/models"
)

// ScoreCache 评分缓存热层接口
type ScoreCache interface {
	Get(ctx context.Context, translationID string) (*models.QualityScoreCache, error)
	Set(ctx context.Context, record *models.QualityScoreCache) error
	Delete(ctx context.Context, translationID string) error
}

// WorkflowPublisher 工作流事件发布接口
type WorkflowPublisher interface {
	PublishClassification(ctx context.Context, event *connectors.ClassificationEvent) error
}

// TranslationReader 翻译文本读取接口，由外部翻译存储实现，用于定时失效扫描
type TranslationReader interface {
	GetTranslationTexts(ctx context.Context, translationID string) (sourceText, targetText string, err error)
}

// ScoreRequest 翻译质量评分请求
type ScoreRequest struct {
	TranslationID  string `json:"translation_id"`
	ProjectID      string `json:"project_id"`
	SourceText     string `json:"source_text"`
	TargetText     string `json:"target_text"`
	SourceLanguage string `json:"source_language,omitempty"`
	TargetLanguage string `json:"target_language,omitempty"`
}

// ScoreResult 翻译质量评分结果
type ScoreResult struct {
	TranslationID  string                `json:"translation_id"`
	Score          int                   `json:"score"`
	Classification models.Classification `json:"classification"`
	Fingerprint    string                `json:"fingerprint"`
	FromCache      bool                  `json:"from_cache"`
	ComputedAt     time.Time             `json:"computed_at"`
}

// QualityService 翻译质量服务
type QualityService struct {
	db            *gorm.DB
	cache         ScoreCache
	evaluator     Evaluator
	publisher     WorkflowPublisher
	configService *config.QualityConfigService
}

// NewQualityService 创建翻译质量服务实例
func NewQualityService(db *gorm.DB, cache ScoreCache, evaluator Evaluator, publisher WorkflowPublisher, configService *config.QualityConfigService) *QualityService {
	return &QualityService{
		db:            db,
		cache:         cache,
		evaluator:     evaluator,
		publisher:     publisher,
		configService: configService,
	}
}

// ScoreTranslation 对翻译对评分：缓存有效直接复用，否则调用外部评估器取新分
func (s *QualityService) ScoreTranslation(ctx context.Context, request *ScoreRequest) (*ScoreResult, error) {
	if request.TranslationID == "" {
		return nil, errors.New("translation_id不能为空")
	}

	cfg, err := s.configService.GetProjectConfig(request.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("获取项目质量配置失败: %w", err)
	}

	fingerprint := Fingerprint(request.SourceText, request.TargetText)

	record, err := s.lookupRecord(ctx, request.TranslationID)
	if err != nil {
		return nil, err
	}

	if record != nil && IsCacheValid(record.Fingerprint, request.SourceText, request.TargetText) {
		metrics.QualityCacheHits.Inc()
		return &ScoreResult{
			TranslationID:  request.TranslationID,
			Score:          record.Score,
			Classification: Classify(record.Score, cfg),
			Fingerprint:    record.Fingerprint,
			FromCache:      true,
			ComputedAt:     record.ComputedAt,
		}, nil
	}

	metrics.QualityCacheMisses.Inc()

	if !cfg.AIEvaluationEnabled {
		return nil, errors.New("项目未启用AI质量评估，且无有效缓存评分")
	}

	score, err := s.evaluator.Evaluate(ctx, &EvaluationRequest{
		TranslationID:  request.TranslationID,
		ProjectID:      request.ProjectID,
		SourceText:     request.SourceText,
		TargetText:     request.TargetText,
		SourceLanguage: request.SourceLanguage,
		TargetLanguage: request.TargetLanguage,
		Provider:       cfg.AIEvaluationProvider,
		Model:          cfg.AIEvaluationModel,
	})
	if err != nil {
		return nil, fmt.Errorf("质量评估失败: %w", err)
	}

	computedAt := time.Now()
	record, err = s.saveRecord(ctx, request, fingerprint, score, computedAt)
	if err != nil {
		return nil, err
	}

	classification := Classify(score, cfg)
	s.publishEvent(ctx, request, record, classification, false)

	return &ScoreResult{
		TranslationID:  request.TranslationID,
		Score:          score,
		Classification: classification,
		Fingerprint:    fingerprint,
		FromCache:      false,
		ComputedAt:     computedAt,
	}, nil
}

// GetCacheRecord 查询翻译的评分缓存记录，不存在返回nil
func (s *QualityService) GetCacheRecord(ctx context.Context, translationID string) (*models.QualityScoreCache, error) {
	return s.lookupRecord(ctx, translationID)
}

// HandleTranslationUpdated 处理翻译文本更新事件，指纹失配时删除过期的评分缓存
func (s *QualityService) HandleTranslationUpdated(event *connectors.TranslationUpdatedEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var record models.QualityScoreCache
	err := s.db.WithContext(ctx).Where("translation_id = ?", event.TranslationID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("查询评分缓存记录失败: %w", err)
	}

	if IsCacheValid(record.Fingerprint, event.SourceText, event.TargetText) {
		return nil
	}

	return s.removeRecord(ctx, event.TranslationID)
}

// SweepStaleScores 批量扫描持久化评分记录，删除指纹与当前文本不再匹配的记录
func (s *QualityService) SweepStaleScores(ctx context.Context, reader TranslationReader) (int, error) {
	removed := 0
	var records []models.QualityScoreCache

	result := s.db.WithContext(ctx).FindInBatches(&records, 200, func(tx *gorm.DB, batch int) error {
		for _, record := range records {
			sourceText, targetText, err := reader.GetTranslationTexts(ctx, record.TranslationID)
			if err != nil {
				slog.Warn("读取翻译文本失败，跳过失效检查",
					"translation_id", record.TranslationID, "error", err)
				continue
			}

			if IsCacheValid(record.Fingerprint, sourceText, targetText) {
				continue
			}

			if err := s.removeRecord(ctx, record.TranslationID); err != nil {
				slog.Warn("删除过期评分记录失败",
					"translation_id", record.TranslationID, "error", err)
				continue
			}
			removed++
		}
		return nil
	})

	if result.Error != nil {
		return removed, fmt.Errorf("扫描评分记录失败: %w", result.Error)
	}
	return removed, nil
}

// lookupRecord 先查Redis热层，未命中回退数据库
func (s *QualityService) lookupRecord(ctx context.Context, translationID string) (*models.QualityScoreCache, error) {
	if s.cache != nil {
		record, err := s.cache.Get(ctx, translationID)
		if err != nil {
			slog.Warn("读取Redis评分缓存失败，回退数据库", "translation_id", translationID, "error", err)
		} else if record != nil {
			return record, nil
		}
	}

	var record models.QualityScoreCache
	err := s.db.WithContext(ctx).Where("translation_id = ?", translationID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询评分缓存记录失败: %w", err)
	}
	return &record, nil
}

// saveRecord 持久化评分记录并回写Redis热层
func (s *QualityService) saveRecord(ctx context.Context, request *ScoreRequest, fingerprint string, score int, computedAt time.Time) (*models.QualityScoreCache, error) {
	var record models.QualityScoreCache
	err := s.db.WithContext(ctx).Where("translation_id = ?", request.TranslationID).First(&record).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		record = models.QualityScoreCache{
			TranslationID: request.TranslationID,
			ProjectID:     request.ProjectID,
			Fingerprint:   fingerprint,
			Score:         score,
			ComputedAt:    computedAt,
		}
		if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
			return nil, fmt.Errorf("创建评分缓存记录失败: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("查询评分缓存记录失败: %w", err)
	default:
		record.Fingerprint = fingerprint
		record.Score = score
		record.ComputedAt = computedAt
		if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
			return nil, fmt.Errorf("更新评分缓存记录失败: %w", err)
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, &record); err != nil {
			slog.Warn("回写Redis评分缓存失败", "translation_id", record.TranslationID, "error", err)
		}
	}
	return &record, nil
}

// removeRecord 删除数据库和Redis中的评分记录
func (s *QualityService) removeRecord(ctx context.Context, translationID string) error {
	if err := s.db.WithContext(ctx).Where("translation_id = ?", translationID).
		Delete(&models.QualityScoreCache{}).Error; err != nil {
		return fmt.Errorf("删除评分缓存记录失败: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, translationID); err != nil {
			slog.Warn("删除Redis评分缓存失败", "translation_id", translationID, "error", err)
		}
	}
	return nil
}

// publishEvent 发布分类事件给工作流引擎，失败不阻断评分流程
func (s *QualityService) publishEvent(ctx context.Context, request *ScoreRequest, record *models.QualityScoreCache, classification models.Classification, fromCache bool) {
	if s.publisher == nil {
		return
	}

	event := &connectors.ClassificationEvent{
		TranslationID:  request.TranslationID,
		ProjectID:      request.ProjectID,
		Score:          record.Score,
		Classification: classification,
		Fingerprint:    record.Fingerprint,
		FromCache:      fromCache,
		OccurredAt:     time.Now(),
	}

	if err := s.publisher.PublishClassification(ctx, event); err != nil {
		slog.Warn("发布分类事件失败", "translation_id", request.TranslationID, "error", err)
	}
}
