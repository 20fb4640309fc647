package models

import (
	"time"
)

// StoreSnapshot 设备状态快照表
// 每个设备的每个 Store 持久化为一整份 JSON 文档，对应浏览器端的 localStorage 条目。
type StoreSnapshot struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                                   // 主键
	DeviceID  string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_device_store" json:"device_id"` // 设备标识
	Store     string    `gorm:"type:varchar(40);not null;uniqueIndex:idx_device_store" json:"store"`     // 文档名称
	Version   int       `gorm:"not null;default:1" json:"version"`                                      // 文档结构版本
	Payload   []byte    `gorm:"type:json" json:"payload"`                                               // 整份文档内容
	CreatedAt time.Time `json:"created_at"`                                                             // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                                                // 最后写入时间
}

// TableName 指定表名
func (StoreSnapshot) TableName() string {
	return "store_snapshots"
}
