/*
 * @module service/quality/evaluator
 * @description 质量评估器接口及远程评估器实现，评分计算本身由外部评估服务完成
 * @architecture 适配器模式 - 封装外部评估服务的HTTP调用
 * @documentReference ai_docs/quality_score_design.md
 * @stateFlow 评估请求 -> 外部评估服务 -> 0-100质量评分
 * @rules 评估器只负责取分，分数的缓存与分类由质量服务处理
 * @dependencies net/http, encoding/json, github.com/spf13/cast
 * @refs service/quality/quality_service.go
 */

package quality

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cast"
)

// EvaluationRequest 质量评估请求
type EvaluationRequest struct {
	TranslationID  string  `json:"translation_id"`
	ProjectID      string  `json:"project_id"`
	SourceText     string  `json:"source_text"`
	TargetText     string  `json:"target_text"`
	SourceLanguage string  `json:"source_language,omitempty"`
	TargetLanguage string  `json:"target_language,omitempty"`
	Provider       *string `json:"provider,omitempty"` // AI提供商，空时由评估服务自选
	Model          *string `json:"model,omitempty"`    // 模型名称
}

// Evaluator 质量评估器接口，由外部评估服务实现
type Evaluator interface {
	Evaluate(ctx context.Context, request *EvaluationRequest) (int, error)
}

var EvaluatorUrl = "http://evaluator:8080"
var evaluatorClient = &http.Client{
	Timeout: 60 * time.Second,
}

func init() {
	if envUrl := os.Getenv("EVALUATOR_URL"); envUrl != "" {
		EvaluatorUrl = envUrl
	}
}

// SetEvaluatorUrl 设置评估服务的URL（用于测试）
func SetEvaluatorUrl(url string) {
	EvaluatorUrl = url
}

// RemoteEvaluator 远程质量评估器，调用外部评估服务的HTTP接口取分
type RemoteEvaluator struct{}

// NewRemoteEvaluator 创建远程质量评估器实例
func NewRemoteEvaluator() *RemoteEvaluator {
	return &RemoteEvaluator{}
}

type evaluateResponse struct {
	Status string      `json:"status"`
	Score  interface{} `json:"score"`
	Msg    string      `json:"msg,omitempty"`
}

// Evaluate 调用外部评估服务对翻译对打分
func (e *RemoteEvaluator) Evaluate(ctx context.Context, request *EvaluationRequest) (int, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return 0, fmt.Errorf("序列化评估请求失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, EvaluatorUrl+"/api/v1/evaluate", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("创建HTTP请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := evaluatorClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("发送HTTP请求失败: %w", err)
	}
	defer resp.Body.Close()

	var evalResp evaluateResponse
	if err = json.NewDecoder(resp.Body).Decode(&evalResp); err != nil {
		return 0, fmt.Errorf("解析评估响应失败: %w", err)
	}

	if evalResp.Status != "success" {
		return 0, fmt.Errorf("评估失败: %s", evalResp.Msg)
	}

	score := cast.ToInt(evalResp.Score)
	if score < 0 || score > 100 {
		return 0, fmt.Errorf("评估服务返回越界评分: %d", score)
	}

	return score, nil
}
