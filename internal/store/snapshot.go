package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// SnapshotVersion 当前快照文档结构版本
const SnapshotVersion = 1

// ErrSnapshotMalformed 快照内容无法解析（调用方应回退到默认状态）
var ErrSnapshotMalformed = errors.New("snapshot payload malformed")

// snapshotEnvelope 带版本号的快照封皮
// 历史版本（浏览器端迁移数据）为不带封皮的裸数组，按版本 0 兼容读取。
type snapshotEnvelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// encodeSnapshot 序列化为带版本号的整份文档
func encodeSnapshot(data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(snapshotEnvelope{
		Version: SnapshotVersion,
		Data:    raw,
	})
}

// decodeSnapshot 解析快照文档
// 空内容视为空状态；任何格式问题返回 ErrSnapshotMalformed，由调用方重置并记录日志。
func decodeSnapshot(raw []byte, dest interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	// 版本 0：不带封皮的裸数组
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, dest); err != nil {
			return fmt.Errorf("%w: %v", ErrSnapshotMalformed, err)
		}
		return nil
	}
	var envelope snapshotEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshotMalformed, err)
	}
	if envelope.Version > SnapshotVersion {
		return fmt.Errorf("%w: unknown version %d", ErrSnapshotMalformed, envelope.Version)
	}
	if len(envelope.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshotMalformed, err)
	}
	return nil
}
