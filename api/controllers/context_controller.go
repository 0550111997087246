/*
 * @module api/controllers/context_controller
 * @description 翻译上下文控制器，提供关联候选的相关性排序接口
 * @architecture MVC架构 - 控制器层
 * @documentReference ai_docs/context_ranking_design.md
 * @stateFlow 请求接收 -> 候选排序 -> 响应返回
 * @rules 排序不截断，提示词长度裁剪由调用方负责
 * @dependencies transhub-service/service/context_ranking, github.com/go-chi/render
 * @refs service/context_ranking/selector.go
 */

package controllers

import (
	"net/http"

	"github.com/go-chi/render"

	"transhub-service/service/context_ranking"
	"transhub-service/service/metrics"
	"transhub-service/service/models"
)

// ContextController 翻译上下文控制器
type ContextController struct{}

// NewContextController 创建翻译上下文控制器实例
func NewContextController() *ContextController {
	return &ContextController{}
}

// RankRequest 上下文排序请求结构
type RankRequest struct {
	Buckets        models.CandidateBuckets `json:"buckets"`
	TargetLanguage string                  `json:"target_language,omitempty"`
}

// RankCandidates 对关联候选做相关性排序
// @Summary 关联候选相关性排序
// @Description 将关系分析器输出的五个候选桶合并打分，返回按相关性降序的候选序列
// @Tags 翻译上下文
// @Accept json
// @Produce json
// @Param request body RankRequest true "候选分桶和目标语言"
// @Success 200 {object} APIResponse{data=context_ranking.RankResult}
// @Failure 400 {object} APIResponse
// @Router /context/rank [post]
func (c *ContextController) RankCandidates(w http.ResponseWriter, r *http.Request) {
	var request RankRequest
	if err := render.DecodeJSON(r.Body, &request); err != nil {
		render.JSON(w, r, APIResponse{
			Status: http.StatusBadRequest,
			Msg:    "请求参数格式错误",
		})
		return
	}

	metrics.ContextRankRequests.Inc()

	result := context_ranking.Rank(&request.Buckets, request.TargetLanguage)
	if result.Dropped > 0 {
		metrics.ContextCandidatesDropped.Add(float64(result.Dropped))
	}

	render.JSON(w, r, APIResponse{
		Status: http.StatusOK,
		Msg:    "候选排序成功",
		Data:   result,
	})
}
