/*
 * @module service/quality/validator_test
 * @description 质量评分缓存校验器的单元测试
 * @architecture 测试层 - 纯函数测试，无外部依赖
 * @documentReference ai_docs/test_plan.md
 * @stateFlow 输入参数 -> 函数调用 -> 输出验证
 * @rules 验证内容寻址的缓存有效性判定
 * @dependencies testing, testify
 * @refs validator.go
 */

package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCacheValid(t *testing.T) {
	testCases := []struct {
		name              string
		cachedFingerprint string
		sourceText        string
		targetText        string
		expected          bool
	}{
		{
			name:              "无缓存指纹判定无效",
			cachedFingerprint: "",
			sourceText:        "a",
			targetText:        "b",
			expected:          false,
		},
		{
			name:              "指纹匹配判定有效",
			cachedFingerprint: Fingerprint("a", "b"),
			sourceText:        "a",
			targetText:        "b",
			expected:          true,
		},
		{
			name:              "译文变化判定无效",
			cachedFingerprint: Fingerprint("a", "b"),
			sourceText:        "a",
			targetText:        "c",
			expected:          false,
		},
		{
			name:              "源文变化判定无效",
			cachedFingerprint: Fingerprint("a", "b"),
			sourceText:        "x",
			targetText:        "b",
			expected:          false,
		},
		{
			name:              "空文本对与其指纹匹配",
			cachedFingerprint: Fingerprint("", ""),
			sourceText:        "",
			targetText:        "",
			expected:          true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsCacheValid(tc.cachedFingerprint, tc.sourceText, tc.targetText))
		})
	}
}
