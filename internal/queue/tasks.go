package queue

import (
	"encoding/json"

	"github.com/rephone-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskDeviceSnapshotPrune 设备快照保留期清理任务
	TaskDeviceSnapshotPrune = constants.TaskDeviceSnapshotPrune
)

// DeviceSnapshotPrunePayload 快照清理任务载荷
type DeviceSnapshotPrunePayload struct {
	DeviceID string `json:"device_id"`
}

// NewDeviceSnapshotPruneTask 创建快照清理任务
func NewDeviceSnapshotPruneTask(payload DeviceSnapshotPrunePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDeviceSnapshotPrune, body), nil
}
