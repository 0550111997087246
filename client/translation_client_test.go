/*
 * @module client/translation_client_test
 * @description 翻译存储客户端的单元测试，基于httptest模拟外部翻译存储
 * @architecture 测试层 - httptest模拟服务
 * @documentReference ai_docs/test_plan.md
 * @stateFlow 模拟服务准备 -> 文本查询 -> 结果/错误验证
 * @rules 客户端必须拒绝空ID和非成功响应
 * @dependencies testing, net/http/httptest, testify
 * @refs translation_client.go
 */

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTranslationTexts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/translations/trans-1/texts", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		json.NewEncoder(w).Encode(translationTextsResp{
			Status:     "success",
			SourceText: "Hello world",
			TargetText: "你好，世界",
		})
	}))
	defer server.Close()

	SetTranslationStoreUrl(server.URL)

	storeClient := NewTranslationStoreClient()
	source, target, err := storeClient.GetTranslationTexts(context.Background(), "trans-1")

	assert.NoError(t, err)
	assert.Equal(t, "Hello world", source)
	assert.Equal(t, "你好，世界", target)
}

func TestGetTranslationTexts_EmptyID(t *testing.T) {
	storeClient := NewTranslationStoreClient()

	_, _, err := storeClient.GetTranslationTexts(context.Background(), "")

	assert.Error(t, err)
}

func TestGetTranslationTexts_ErrorResponses(t *testing.T) {
	testCases := []struct {
		name     string
		response string
		errMsg   string
	}{
		{
			name:     "翻译存储返回失败状态",
			response: `{"status":"error","msg":"翻译不存在"}`,
			errMsg:   "查询翻译文本失败",
		},
		{
			name:     "响应体非JSON",
			response: `<html>gateway error</html>`,
			errMsg:   "解析响应失败",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.response))
			}))
			defer server.Close()

			SetTranslationStoreUrl(server.URL)

			storeClient := NewTranslationStoreClient()
			_, _, err := storeClient.GetTranslationTexts(context.Background(), "trans-x")

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
