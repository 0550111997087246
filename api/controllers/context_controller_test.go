/*
 * @module api/controllers/context_controller_test
 * @description 翻译上下文控制器单元测试
 * @architecture 测试层
 * @documentReference ai_docs/test_plan.md
 * @stateFlow 测试准备 -> 请求构建 -> 响应验证
 * @rules 确保排序API的正确性和参数校验
 * @dependencies testing, net/http/httptest, stretchr/testify
 */

package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transhub-service/service/models"
)

// TestRankCandidates 测试候选排序接口
func TestRankCandidates(t *testing.T) {
	controller := NewContextController()

	body, err := json.Marshal(RankRequest{
		Buckets: models.CandidateBuckets{
			Nearby: []models.RelatedCandidate{
				{ID: "n1", Confidence: 0.9},
			},
			Semantic: []models.RelatedCandidate{
				{ID: "s1", Confidence: 0.5},
			},
		},
		TargetLanguage: "fr",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/context/rank", bytes.NewReader(body))
	w := httptest.NewRecorder()

	controller.RankCandidates(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response APIResponse
	err = json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.Status)

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok, "响应数据应该是map类型")

	candidates, ok := data["candidates"].([]interface{})
	require.True(t, ok)
	assert.Len(t, candidates, 2)

	// nearby 桶候选评分更高，应排在前面
	first, ok := candidates[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "n1", first["id"])
	assert.Equal(t, "nearby", first["relationship_type"])
}

// TestRankCandidates_EmptyBuckets 测试空桶请求
func TestRankCandidates_EmptyBuckets(t *testing.T) {
	controller := NewContextController()

	body, err := json.Marshal(RankRequest{})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/context/rank", bytes.NewReader(body))
	w := httptest.NewRecorder()

	controller.RankCandidates(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response APIResponse
	err = json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)

	candidates, ok := data["candidates"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, candidates)
}

// TestRankCandidates_InvalidBody 测试非法请求体
func TestRankCandidates_InvalidBody(t *testing.T) {
	controller := NewContextController()

	req := httptest.NewRequest(http.MethodPost, "/context/rank", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()

	controller.RankCandidates(w, req)

	var response APIResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, response.Status)
}
