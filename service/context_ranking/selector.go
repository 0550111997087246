/*
 * @module service/context_ranking/selector
 * @description 上下文选择器，将五个关系桶的候选条目合并打分并稳定排序，产出AI翻译上下文的排序序列
 * @architecture 分层架构 - 业务服务层
 * @documentReference ai_docs/context_ranking_design.md
 * @stateFlow 候选分桶 -> 类型标记 -> 合并 -> 打分 -> 稳定降序排序
 * @rules 必须使用稳定排序，等分候选保持桶顺序和桶内顺序；置信度越界的候选剔除并计数
 * @dependencies transhub-service/service/models, sort, log/slog
 * @refs service/context_ranking/scorer.go, api/controllers/context_controller.go
 */

package context_ranking

import (
	"log/slog"
	"sort"

	"transhub-service/service/models"
)

// RankResult 排序结果，Dropped 为因置信度越界被剔除的候选数
type RankResult struct {
	Candidates []models.ScoredCandidate `json:"candidates"`
	Dropped    int                      `json:"dropped"`
}

// Rank 将五个关系桶的候选条目合并为一个按相关性降序的序列
// 不做截断，提示词长度预算由调用方自行裁剪
func Rank(buckets *models.CandidateBuckets, targetLanguage string) *RankResult {
	result := &RankResult{
		Candidates: make([]models.ScoredCandidate, 0),
	}

	// 按固定桶顺序标记并合并，等分时该顺序即为决胜顺序
	for _, relType := range bucketOrder {
		for _, candidate := range bucketFor(buckets, relType) {
			if candidate.Confidence < 0 || candidate.Confidence > 1 {
				slog.Warn("候选置信度越界，已剔除",
					"candidate_id", candidate.ID,
					"confidence", candidate.Confidence,
					"relationship_type", relType)
				result.Dropped++
				continue
			}

			result.Candidates = append(result.Candidates, models.ScoredCandidate{
				RelatedCandidate: candidate,
				RelationshipType: relType,
				Score:            Score(&candidate, relType, targetLanguage),
			})
		}
	}

	// 稳定排序保证等分候选保持合并时的相对顺序
	sort.SliceStable(result.Candidates, func(i, j int) bool {
		return result.Candidates[i].Score > result.Candidates[j].Score
	})

	return result
}

// bucketFor 根据关系类型取对应的候选桶
func bucketFor(buckets *models.CandidateBuckets, relType models.RelationshipType) []models.RelatedCandidate {
	switch relType {
	case models.RelationshipNearby:
		return buckets.Nearby
	case models.RelationshipKeyPattern:
		return buckets.KeyPattern
	case models.RelationshipSameComponent:
		return buckets.SameComponent
	case models.RelationshipSameFile:
		return buckets.SameFile
	case models.RelationshipSemantic:
		return buckets.Semantic
	default:
		return nil
	}
}
