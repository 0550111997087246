/*
 * @module api/controllers/quality_controller
 * @description 翻译质量控制器，提供质量评分、缓存查询和缓存有效性校验接口
 * @architecture MVC架构 - 控制器层
 * @documentReference ai_docs/quality_score_design.md
 * @stateFlow 请求接收 -> 质量服务编排 -> 响应返回
 * @rules 评分失败返回500，参数错误返回400，缓存记录不存在返回404
 * @dependencies transhub-service/service/quality, github.com/go-chi/chi/v5, github.com/go-chi/render
 * @refs service/quality/quality_service.go
 */

package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"transhub-service/service/quality"
)

// QualityController 翻译质量控制器
type QualityController struct {
	qualityService *quality.QualityService
}

// NewQualityController 创建翻译质量控制器实例
func NewQualityController(qualityService *quality.QualityService) *QualityController {
	return &QualityController{
		qualityService: qualityService,
	}
}

// ScoreTranslation 对翻译对执行质量评分
// @Summary 翻译质量评分
// @Description 缓存指纹有效时复用缓存评分，否则调用外部评估器取新分并按项目阈值分类
// @Tags 翻译质量
// @Accept json
// @Produce json
// @Param request body quality.ScoreRequest true "翻译对信息"
// @Success 200 {object} APIResponse{data=quality.ScoreResult}
// @Failure 400 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /quality/score [post]
func (c *QualityController) ScoreTranslation(w http.ResponseWriter, r *http.Request) {
	var request quality.ScoreRequest
	if err := render.DecodeJSON(r.Body, &request); err != nil {
		render.JSON(w, r, APIResponse{
			Status: http.StatusBadRequest,
			Msg:    "请求参数格式错误",
		})
		return
	}

	if request.TranslationID == "" || request.ProjectID == "" {
		render.JSON(w, r, APIResponse{
			Status: http.StatusBadRequest,
			Msg:    "translation_id和project_id不能为空",
		})
		return
	}

	result, err := c.qualityService.ScoreTranslation(r.Context(), &request)
	if err != nil {
		render.JSON(w, r, APIResponse{
			Status: http.StatusInternalServerError,
			Msg:    "翻译质量评分失败",
		})
		return
	}

	render.JSON(w, r, APIResponse{
		Status: http.StatusOK,
		Msg:    "翻译质量评分成功",
		Data:   result,
	})
}

// GetCacheRecord 查询翻译的评分缓存记录
// @Summary 查询评分缓存记录
// @Description 根据翻译ID查询已存储的质量评分缓存记录
// @Tags 翻译质量
// @Produce json
// @Param translation_id path string true "翻译ID"
// @Success 200 {object} APIResponse{data=models.QualityScoreCache}
// @Failure 404 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /quality/cache/{translation_id} [get]
func (c *QualityController) GetCacheRecord(w http.ResponseWriter, r *http.Request) {
	translationID := chi.URLParam(r, "translation_id")

	record, err := c.qualityService.GetCacheRecord(r.Context(), translationID)
	if err != nil {
		render.JSON(w, r, APIResponse{
			Status: http.StatusInternalServerError,
			Msg:    "查询评分缓存记录失败",
		})
		return
	}

	if record == nil {
		render.JSON(w, r, APIResponse{
			Status: http.StatusNotFound,
			Msg:    "评分缓存记录不存在",
		})
		return
	}

	render.JSON(w, r, APIResponse{
		Status: http.StatusOK,
		Msg:    "查询评分缓存记录成功",
		Data:   record,
	})
}

// ValidateCacheRequest 缓存有效性校验请求结构
type ValidateCacheRequest struct {
	Fingerprint string `json:"fingerprint"`
	SourceText  string `json:"source_text"`
	TargetText  string `json:"target_text"`
}

// ValidateCacheResponse 缓存有效性校验响应结构
type ValidateCacheResponse struct {
	Valid              bool   `json:"valid"`
	CurrentFingerprint string `json:"current_fingerprint"`
}

// ValidateCache 校验缓存指纹对当前文本对是否有效
// @Summary 缓存有效性校验
// @Description 纯内容寻址校验：缓存指纹与当前文本对指纹一致则有效
// @Tags 翻译质量
// @Accept json
// @Produce json
// @Param request body ValidateCacheRequest true "缓存指纹和文本对"
// @Success 200 {object} APIResponse{data=ValidateCacheResponse}
// @Failure 400 {object} APIResponse
// @Router /quality/cache/validate [post]
func (c *QualityController) ValidateCache(w http.ResponseWriter, r *http.Request) {
	var request ValidateCacheRequest
	if err := render.DecodeJSON(r.Body, &request); err != nil {
		render.JSON(w, r, APIResponse{
			Status: http.StatusBadRequest,
			Msg:    "请求参数格式错误",
		})
		return
	}

	render.JSON(w, r, APIResponse{
		Status: http.StatusOK,
		Msg:    "缓存有效性校验成功",
		Data: ValidateCacheResponse{
			Valid:              quality.IsCacheValid(request.Fingerprint, request.SourceText, request.TargetText),
			CurrentFingerprint: quality.Fingerprint(request.SourceText, request.TargetText),
		},
	})
}
