/*
 * @module service/quality/hasher
 * @description 内容指纹计算，对源文/译文对生成确定性的16位十六进制指纹
 * @architecture 工具层 - 纯函数无副作用
 * @documentReference ai_docs/quality_score_design.md
 * @stateFlow 源文+译文 -> SHA-256摘要 -> 十六进制编码 -> 截取前16位
 * @rules 相同文本对必须产出相同指纹，任一文本变化指纹必须变化；缺失文本按空串处理
 * @dependencies crypto/sha256, encoding/hex
 * @refs service/quality/validator.go
 */

package quality

import (
	"crypto/sha256"
	"encoding/hex"
)

// 指纹长度，16位十六进制即64位摘要，为存储紧凑性牺牲部分抗碰撞性
const fingerprintLength = 16

// Fingerprint 计算源文/译文对的内容指纹
func Fingerprint(sourceText, targetText string) string {
	digest := sha256.Sum256([]byte(sourceText + "|" + targetText))
	return hex.EncodeToString(digest[:])[:fingerprintLength]
}
