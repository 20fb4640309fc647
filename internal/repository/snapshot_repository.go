package repository

import (
	"errors"
	"time"

	"github.com/rephone-next/internal/models"

	"gorm.io/gorm"
)

// SnapshotRepository 设备快照数据访问接口
type SnapshotRepository interface {
	Get(deviceID, store string) (*models.StoreSnapshot, error)
	Upsert(deviceID, store string, version int, payload []byte) error
	Delete(deviceID, store string) error
	DeleteByDevice(deviceID string) error
	LastUpdatedAt(deviceID string) (*time.Time, error)
}

// GormSnapshotRepository GORM 实现
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository 创建快照仓库
func NewSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// Get 获取单份快照文档
func (r *GormSnapshotRepository) Get(deviceID, store string) (*models.StoreSnapshot, error) {
	var snapshot models.StoreSnapshot
	err := r.db.Where("device_id = ? AND store = ?", deviceID, store).First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Upsert 整份覆盖写入快照文档
func (r *GormSnapshotRepository) Upsert(deviceID, store string, version int, payload []byte) error {
	var existing models.StoreSnapshot
	err := r.db.Where("device_id = ? AND store = ?", deviceID, store).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&models.StoreSnapshot{
			DeviceID: deviceID,
			Store:    store,
			Version:  version,
			Payload:  payload,
		}).Error
	}
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		"version":    version,
		"payload":    payload,
		"updated_at": time.Now(),
	}
	return r.db.Model(&existing).Updates(updates).Error
}

// Delete 删除单份快照文档
func (r *GormSnapshotRepository) Delete(deviceID, store string) error {
	return r.db.Where("device_id = ? AND store = ?", deviceID, store).Delete(&models.StoreSnapshot{}).Error
}

// DeleteByDevice 删除设备的全部快照
func (r *GormSnapshotRepository) DeleteByDevice(deviceID string) error {
	return r.db.Where("device_id = ?", deviceID).Delete(&models.StoreSnapshot{}).Error
}

// LastUpdatedAt 返回设备最近一次快照写入时间
func (r *GormSnapshotRepository) LastUpdatedAt(deviceID string) (*time.Time, error) {
	var snapshot models.StoreSnapshot
	err := r.db.Where("device_id = ?", deviceID).Order("updated_at desc").First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snapshot.UpdatedAt, nil
}
