package service

import (
	"errors"
	"testing"

	"github.com/rephone-next/internal/catalog"
)

func TestRecentlyViewedServiceTrackOrder(t *testing.T) {
	svc := NewRecentlyViewedService(newTestCatalog(), newTestSnapshots(t))

	for _, id := range []string{"1", "2", "3", "1"} {
		if err := svc.Track("dev-1", id); err != nil {
			t.Fatalf("track %s: %v", id, err)
		}
	}

	entries, err := svc.Entries("dev-1")
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	// 重复浏览上浮
	for i, want := range []string{"1", "3", "2"} {
		if entries[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, entries[i].ID)
		}
	}
}

func TestRecentlyViewedServiceUnknownProduct(t *testing.T) {
	svc := NewRecentlyViewedService(newTestCatalog(), newTestSnapshots(t))
	if err := svc.Track("dev-1", "missing"); !errors.Is(err, catalog.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestRecentlyViewedServicePersistsAcrossInstances(t *testing.T) {
	cat := newTestCatalog()
	snapshots := newTestSnapshots(t)

	first := NewRecentlyViewedService(cat, snapshots)
	if err := first.Track("dev-1", "1"); err != nil {
		t.Fatalf("track: %v", err)
	}
	if err := first.Track("dev-1", "2"); err != nil {
		t.Fatalf("track: %v", err)
	}

	second := NewRecentlyViewedService(cat, snapshots)
	entries, err := second.Entries("dev-1")
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 2 || entries[0].ID != "2" {
		t.Fatalf("expected restored entries newest first, got %+v", entries)
	}
}

func TestRecentlyViewedServiceClear(t *testing.T) {
	svc := NewRecentlyViewedService(newTestCatalog(), newTestSnapshots(t))
	if err := svc.Track("dev-1", "1"); err != nil {
		t.Fatalf("track: %v", err)
	}
	if err := svc.Clear("dev-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	total, err := svc.TotalItems("dev-1")
	if err != nil {
		t.Fatalf("total items: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected empty record, got %d", total)
	}
}
