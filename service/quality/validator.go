/*
 * @module service/quality/validator
 * @description 质量评分缓存校验器，基于内容指纹判断已缓存的评分是否仍然可用
 * @architecture 工具层 - 纯谓词函数
 * @documentReference ai_docs/quality_score_design.md
 * @stateFlow 缓存指纹 -> 重算指纹 -> 比对
 * @rules 纯内容寻址，无TTL：文本不变则缓存永久有效，任一文本变化即失效
 * @dependencies 无外部依赖
 * @refs service/quality/hasher.go, service/quality/quality_service.go
 */

package quality

// IsCacheValid 判断缓存的评分对当前文本对是否仍然有效
// cachedFingerprint 为空表示没有缓存记录，直接判定无效
func IsCacheValid(cachedFingerprint, sourceText, targetText string) bool {
	if cachedFingerprint == "" {
		return false
	}
	return cachedFingerprint == Fingerprint(sourceText, targetText)
}
