/*
 * @module service/context_ranking/scorer
 * @description 相关性打分器，根据关系类型权重、置信度和审批加成计算候选条目的相关性评分
 * @architecture 分层架构 - 业务服务层，纯函数无副作用
 * @documentReference ai_docs/context_ranking_design.md
 * @stateFlow 候选条目 -> 权重查表 -> 置信度乘积 -> 审批加成 -> 相关性评分
 * @rules 评分公式 score = weight * confidence * approvalBoost，无错误路径
 * @dependencies transhub-service/service/models, golang.org/x/text/language
 * @refs service/context_ranking/priority.go, service/context_ranking/selector.go
 */

package context_ranking

import (
	"transhub-service/service/models"

	"golang.org/x/text/language"
)

// 目标语言已有批准翻译时的评分加成
const approvalBoost = 1.2

// Score 计算单个候选条目的相关性评分
// targetLanguage 为空时不应用审批加成
func Score(candidate *models.RelatedCandidate, relType models.RelationshipType, targetLanguage string) float64 {
	score := PriorityWeight(relType) * candidate.Confidence

	if targetLanguage != "" && hasApprovedTranslation(candidate, targetLanguage) {
		score *= approvalBoost
	}

	return score
}

// hasApprovedTranslation 判断候选条目在目标语言下是否存在已批准的翻译
func hasApprovedTranslation(candidate *models.RelatedCandidate, targetLanguage string) bool {
	for _, translation := range candidate.Translations {
		if translation.ApprovalStatus != models.TranslationStatusApproved {
			continue
		}
		if sameLanguage(translation.Language, targetLanguage) {
			return true
		}
	}
	return false
}

// sameLanguage 比较两个语言代码是否为同一规范语言标签。
// 先做精确字符串相等的快速判断，再做BCP-47规范化比较，
// 兼容 zh-CN / zh_CN / ZH-cn 等书写差异；解析失败时只认精确相等
func sameLanguage(a, b string) bool {
	if a == b {
		return true
	}

	tagA, errA := language.Parse(a)
	tagB, errB := language.Parse(b)
	if errA != nil || errB != nil {
		return false
	}

	return tagA.String() == tagB.String()
}
