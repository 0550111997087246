/*
 * @module client/translation_client
 * @description 翻译存储HTTP客户端，从外部翻译存储读取翻译对当前文本，供过期评分扫描使用
 * @architecture 适配器模式 - 封装外部翻译存储的HTTP查询
 * @documentReference ai_docs/quality_score_design.md
 * @stateFlow 翻译ID -> HTTP查询 -> 当前源文/译文
 * @rules 翻译存储是外部协作方，本客户端只读
 * @dependencies net/http, encoding/json
 * @refs service/scheduler/stale_score_sweeper.go
 */

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

var TranslationStoreUrl = "http://translation-store:8080"
var translationClient = &http.Client{
	Timeout: 30 * time.Second,
}

func init() {
	if envUrl := os.Getenv("TRANSLATION_STORE_URL"); envUrl != "" {
		TranslationStoreUrl = envUrl
	}
}

// SetTranslationStoreUrl 设置翻译存储的URL（用于测试）
func SetTranslationStoreUrl(url string) {
	TranslationStoreUrl = url
}

// TranslationStoreClient 翻译存储客户端
type TranslationStoreClient struct{}

// NewTranslationStoreClient 创建翻译存储客户端实例
func NewTranslationStoreClient() *TranslationStoreClient {
	return &TranslationStoreClient{}
}

type translationTextsResp struct {
	Status     string `json:"status"`
	SourceText string `json:"source_text"`
	TargetText string `json:"target_text"`
	Msg        string `json:"msg,omitempty"`
}

// GetTranslationTexts 查询翻译对的当前源文和译文
func (c *TranslationStoreClient) GetTranslationTexts(ctx context.Context, translationID string) (string, string, error) {
	if translationID == "" {
		return "", "", errors.New("translation_id不能为空")
	}

	url := fmt.Sprintf("%s/api/v1/translations/%s/texts", TranslationStoreUrl, translationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", "", fmt.Errorf("创建HTTP请求失败: %w", err)
	}

	resp, err := translationClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("发送HTTP请求失败: %w", err)
	}
	defer resp.Body.Close()

	var textsResp translationTextsResp
	if err = json.NewDecoder(resp.Body).Decode(&textsResp); err != nil {
		return "", "", fmt.Errorf("解析响应失败: %w", err)
	}

	if textsResp.Status != "success" {
		return "", "", fmt.Errorf("查询翻译文本失败: %s", textsResp.Msg)
	}

	return textsResp.SourceText, textsResp.TargetText, nil
}
