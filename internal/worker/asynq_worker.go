package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rephone-next/internal/logger"
	"github.com/rephone-next/internal/provider"
	"github.com/rephone-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskDeviceSnapshotPrune, c.handleDeviceSnapshotPrune)
}

// handleDeviceSnapshotPrune 回收闲置设备的快照
// 设备在保留期内仍有写入时不回收，改为按剩余闲置时间重新挂延迟任务。
func (c *Consumer) handleDeviceSnapshotPrune(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_snapshot_prune_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.DeviceSnapshotPrunePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_snapshot_prune_unmarshal_failed", "error", err)
		return err
	}
	if payload.DeviceID == "" {
		logger.Debugw("worker_snapshot_prune_skip_invalid_payload")
		return nil
	}

	lastUpdated, err := c.SnapshotRepo.LastUpdatedAt(payload.DeviceID)
	if err != nil {
		logger.Warnw("worker_snapshot_prune_fetch_failed", "device_id", payload.DeviceID, "error", err)
		return err
	}
	if lastUpdated == nil {
		logger.Debugw("worker_snapshot_prune_skip_no_snapshots", "device_id", payload.DeviceID)
		return nil
	}

	retention := time.Duration(c.Config.Session.SnapshotRetentionH) * time.Hour
	if retention <= 0 {
		logger.Debugw("worker_snapshot_prune_skip_retention_disabled", "device_id", payload.DeviceID)
		return nil
	}

	idle := time.Since(*lastUpdated)
	if idle < retention {
		remaining := retention - idle
		if err := c.QueueClient.EnqueueDeviceSnapshotPrune(payload, asynq.ProcessIn(remaining)); err != nil {
			logger.Warnw("worker_snapshot_prune_reenqueue_failed", "device_id", payload.DeviceID, "error", err)
			return err
		}
		logger.Debugw("worker_snapshot_prune_deferred", "device_id", payload.DeviceID, "remaining", remaining.String())
		return nil
	}

	if err := c.SnapshotRepo.DeleteByDevice(payload.DeviceID); err != nil {
		logger.Warnw("worker_snapshot_prune_delete_failed", "device_id", payload.DeviceID, "error", err)
		return err
	}
	logger.Infow("worker_snapshot_prune_done", "device_id", payload.DeviceID, "idle", idle.String())
	return nil
}
