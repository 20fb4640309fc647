package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rephone-next/internal/constants"
	"github.com/rephone-next/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.StoreSnapshot{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSnapshotUpsertAndGet(t *testing.T) {
	repo := NewSnapshotRepository(newTestDB(t))

	if err := repo.Upsert("dev-1", constants.StoreCart, 1, []byte(`{"version":1,"data":[]}`)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	snapshot, err := repo.Get("dev-1", constants.StoreCart)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if snapshot == nil {
		t.Fatal("expected snapshot, got nil")
	}
	if snapshot.Version != 1 {
		t.Fatalf("expected version 1, got %d", snapshot.Version)
	}

	// 整份覆盖写入
	payload := []byte(`{"version":1,"data":[{"id":"1","quantity":2}]}`)
	if err := repo.Upsert("dev-1", constants.StoreCart, 1, payload); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	snapshot, err = repo.Get("dev-1", constants.StoreCart)
	if err != nil {
		t.Fatalf("get after upsert: %v", err)
	}
	if string(snapshot.Payload) != string(payload) {
		t.Fatalf("expected payload overwritten, got %s", snapshot.Payload)
	}

	var count int64
	if err := repo.db.Model(&models.StoreSnapshot{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected single row per device/store, got %d", count)
	}
}

func TestSnapshotGetMissingReturnsNil(t *testing.T) {
	repo := NewSnapshotRepository(newTestDB(t))
	snapshot, err := repo.Get("dev-1", constants.StoreCart)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if snapshot != nil {
		t.Fatalf("expected nil, got %+v", snapshot)
	}
}

func TestSnapshotDelete(t *testing.T) {
	repo := NewSnapshotRepository(newTestDB(t))
	if err := repo.Upsert("dev-1", constants.StoreCart, 1, []byte(`[]`)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.Delete("dev-1", constants.StoreCart); err != nil {
		t.Fatalf("delete: %v", err)
	}
	snapshot, err := repo.Get("dev-1", constants.StoreCart)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if snapshot != nil {
		t.Fatal("expected snapshot deleted")
	}
	// 重复删除幂等
	if err := repo.Delete("dev-1", constants.StoreCart); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestSnapshotDeleteByDevice(t *testing.T) {
	repo := NewSnapshotRepository(newTestDB(t))
	stores := []string{constants.StoreCart, constants.StoreWishlist, constants.StoreRecentlyViewed}
	for _, s := range stores {
		if err := repo.Upsert("dev-1", s, 1, []byte(`[]`)); err != nil {
			t.Fatalf("upsert %s: %v", s, err)
		}
	}
	if err := repo.Upsert("dev-2", constants.StoreCart, 1, []byte(`[]`)); err != nil {
		t.Fatalf("upsert dev-2: %v", err)
	}

	if err := repo.DeleteByDevice("dev-1"); err != nil {
		t.Fatalf("delete by device: %v", err)
	}
	for _, s := range stores {
		snapshot, err := repo.Get("dev-1", s)
		if err != nil {
			t.Fatalf("get %s: %v", s, err)
		}
		if snapshot != nil {
			t.Fatalf("expected %s deleted", s)
		}
	}
	// 其他设备不受影响
	snapshot, err := repo.Get("dev-2", constants.StoreCart)
	if err != nil {
		t.Fatalf("get dev-2: %v", err)
	}
	if snapshot == nil {
		t.Fatal("expected dev-2 snapshot untouched")
	}
}

func TestSnapshotLastUpdatedAt(t *testing.T) {
	repo := NewSnapshotRepository(newTestDB(t))

	ts, err := repo.LastUpdatedAt("dev-1")
	if err != nil {
		t.Fatalf("last updated: %v", err)
	}
	if ts != nil {
		t.Fatalf("expected nil for unknown device, got %v", ts)
	}

	if err := repo.Upsert("dev-1", constants.StoreCart, 1, []byte(`[]`)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	ts, err = repo.LastUpdatedAt("dev-1")
	if err != nil {
		t.Fatalf("last updated: %v", err)
	}
	if ts == nil || ts.IsZero() {
		t.Fatalf("expected timestamp, got %v", ts)
	}
}
