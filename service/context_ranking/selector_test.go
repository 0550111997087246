/*
 * @module service/context_ranking/selector_test
 * @description 上下文选择器的单元测试
 * @architecture 测试层 - 纯函数测试，无外部依赖
 * @documentReference ai_docs/test_plan.md
 * @stateFlow 候选分桶 -> 排序 -> 结果验证
 * @rules 验证降序排序、稳定性决胜、空桶处理和越界候选剔除
 * @dependencies testing, testify
 * @refs selector.go
 */

package context_ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"transhub-service/service/models"
)

func candidate(id string, confidence float64) models.RelatedCandidate {
	return models.RelatedCandidate{ID: id, Confidence: confidence}
}

func TestRank_EmptyBuckets(t *testing.T) {
	result := Rank(&models.CandidateBuckets{}, "zh-CN")

	assert.Empty(t, result.Candidates)
	assert.Zero(t, result.Dropped)
}

func TestRank_DescendingByScore(t *testing.T) {
	buckets := &models.CandidateBuckets{
		Nearby:   []models.RelatedCandidate{candidate("n1", 0.5)}, // 1.0*0.5 = 0.50
		Semantic: []models.RelatedCandidate{candidate("s1", 1.0)}, // 0.6*1.0 = 0.60
		SameFile: []models.RelatedCandidate{candidate("f1", 0.4)}, // 0.7*0.4 = 0.28
	}

	result := Rank(buckets, "")

	assert.Len(t, result.Candidates, 3)
	assert.Equal(t, "s1", result.Candidates[0].ID)
	assert.Equal(t, "n1", result.Candidates[1].ID)
	assert.Equal(t, "f1", result.Candidates[2].ID)

	// 每个候选都带上了所属桶的关系类型
	assert.Equal(t, models.RelationshipSemantic, result.Candidates[0].RelationshipType)
	assert.Equal(t, models.RelationshipNearby, result.Candidates[1].RelationshipType)
	assert.Equal(t, models.RelationshipSameFile, result.Candidates[2].RelationshipType)
}

func TestRank_StableTieBreakByBucketOrder(t *testing.T) {
	// 0.7*0.6 == 0.6*0.7 == 0.42，等分时 same_file 桶在 semantic 桶之前
	buckets := &models.CandidateBuckets{
		SameFile: []models.RelatedCandidate{candidate("file", 0.6)},
		Semantic: []models.RelatedCandidate{candidate("sem", 0.7)},
	}

	result := Rank(buckets, "")

	assert.Len(t, result.Candidates, 2)
	assert.Equal(t, "file", result.Candidates[0].ID)
	assert.Equal(t, "sem", result.Candidates[1].ID)
	assert.InDelta(t, result.Candidates[0].Score, result.Candidates[1].Score, 1e-9)
}

func TestRank_StableWithinBucket(t *testing.T) {
	// 同桶同分候选保持桶内原始顺序
	buckets := &models.CandidateBuckets{
		KeyPattern: []models.RelatedCandidate{
			candidate("k1", 0.5),
			candidate("k2", 0.5),
			candidate("k3", 0.5),
		},
	}

	result := Rank(buckets, "")

	assert.Len(t, result.Candidates, 3)
	assert.Equal(t, "k1", result.Candidates[0].ID)
	assert.Equal(t, "k2", result.Candidates[1].ID)
	assert.Equal(t, "k3", result.Candidates[2].ID)
}

func TestRank_DropsOutOfRangeConfidence(t *testing.T) {
	testCases := []struct {
		name          string
		buckets       *models.CandidateBuckets
		expectedIDs   []string
		expectedDrops int
	}{
		{
			name: "置信度大于1被剔除",
			buckets: &models.CandidateBuckets{
				Nearby: []models.RelatedCandidate{candidate("ok", 0.9), candidate("bad", 1.5)},
			},
			expectedIDs:   []string{"ok"},
			expectedDrops: 1,
		},
		{
			name: "置信度小于0被剔除",
			buckets: &models.CandidateBuckets{
				Semantic: []models.RelatedCandidate{candidate("bad", -0.1), candidate("ok", 0.3)},
			},
			expectedIDs:   []string{"ok"},
			expectedDrops: 1,
		},
		{
			name: "边界值0和1保留",
			buckets: &models.CandidateBuckets{
				Nearby:   []models.RelatedCandidate{candidate("one", 1.0)},
				SameFile: []models.RelatedCandidate{candidate("zero", 0.0)},
			},
			expectedIDs:   []string{"one", "zero"},
			expectedDrops: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Rank(tc.buckets, "")

			ids := make([]string, 0, len(result.Candidates))
			for _, scored := range result.Candidates {
				ids = append(ids, scored.ID)
			}

			assert.Equal(t, tc.expectedIDs, ids)
			assert.Equal(t, tc.expectedDrops, result.Dropped)
		})
	}
}

func TestRank_ApprovalBoostAffectsOrder(t *testing.T) {
	// 低权重桶的候选凭借审批加成反超：0.6*0.9*1.2=0.648 > 0.7*0.9=0.63
	buckets := &models.CandidateBuckets{
		SameFile: []models.RelatedCandidate{candidate("plain", 0.9)},
		Semantic: []models.RelatedCandidate{
			{
				ID:         "boosted",
				Confidence: 0.9,
				Translations: []models.CandidateTranslation{
					{Language: "de", Value: "Hallo", ApprovalStatus: models.TranslationStatusApproved},
				},
			},
		},
	}

	result := Rank(buckets, "de")

	assert.Equal(t, "boosted", result.Candidates[0].ID)
	assert.Equal(t, "plain", result.Candidates[1].ID)
}
