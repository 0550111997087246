/*
 * @module service/quality/threshold
 * @description 质量阈值策略，将0-100的质量评分按项目配置分类为工作流决策
 * @architecture 工具层 - 纯函数无副作用
 * @documentReference ai_docs/quality_score_design.md
 * @stateFlow 质量评分 -> 阈值比较 -> 自动批准/保持现状/标记复核
 * @rules 各分段下界取闭区间：score == flag_threshold 归为 default 而非 flag；
 *        阈值顺序校验属于配置保存层，本策略按字面比较执行
 * @dependencies transhub-service/service/models
 * @refs service/quality/quality_service.go, service/config/quality_config_service.go
 */

package quality

import (
	"transhub-service/service/models"
)

// Classify 按项目质量配置将评分分类为工作流决策
func Classify(score int, config *models.QualityConfig) models.Classification {
	if score >= config.AutoApproveThreshold {
		return models.ClassificationAutoApprove
	}
	if score < config.FlagThreshold {
		return models.ClassificationFlag
	}
	return models.ClassificationDefault
}
