package service

import (
	"errors"
	"testing"

	"github.com/rephone-next/internal/catalog"
	"github.com/rephone-next/internal/constants"
	"github.com/rephone-next/internal/store"
)

func TestWishlistServiceAddAndRemove(t *testing.T) {
	svc := NewWishlistService(newTestCatalog(), newTestSnapshots(t))

	if err := svc.AddItem("dev-1", "1", []string{constants.CollectionFavorites}); err != nil {
		t.Fatalf("add item: %v", err)
	}
	in, err := svc.IsInWishlist("dev-1", "1")
	if err != nil {
		t.Fatalf("is in wishlist: %v", err)
	}
	if !in {
		t.Fatal("expected product 1 in wishlist")
	}

	if err := svc.AddItem("dev-1", "missing", nil); !errors.Is(err, catalog.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	if err := svc.RemoveItem("dev-1", "1"); err != nil {
		t.Fatalf("remove item: %v", err)
	}
	items, _ := svc.Items("dev-1")
	if len(items) != 0 {
		t.Fatalf("expected empty wishlist, got %d items", len(items))
	}
}

func TestWishlistServicePersistsAcrossInstances(t *testing.T) {
	cat := newTestCatalog()
	snapshots := newTestSnapshots(t)

	first := NewWishlistService(cat, snapshots)
	collection, err := first.CreateCollection("dev-1", CreateCollectionInput{
		Name:  "Gifts",
		Color: "purple",
		Icon:  "🎁",
	})
	if err != nil {
		t.Fatalf("create collection: %v", err)
	}
	if err := first.AddItem("dev-1", "1", []string{collection.ID}); err != nil {
		t.Fatalf("add item: %v", err)
	}

	second := NewWishlistService(cat, snapshots)
	items, err := second.Items("dev-1")
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 1 || items[0].ID != "1" {
		t.Fatalf("expected restored item, got %+v", items)
	}
	restored, err := second.CollectionByID("dev-1", collection.ID)
	if err != nil {
		t.Fatalf("collection by id: %v", err)
	}
	if restored.Name != "Gifts" || restored.ItemCount != 1 {
		t.Fatalf("unexpected restored collection: %+v", restored)
	}
}

func TestWishlistServiceCollectionLifecycle(t *testing.T) {
	svc := NewWishlistService(newTestCatalog(), newTestSnapshots(t))

	collection, err := svc.CreateCollection("dev-1", CreateCollectionInput{Name: "Gifts", Color: "blue"})
	if err != nil {
		t.Fatalf("create collection: %v", err)
	}

	name := "Birthday"
	if err := svc.UpdateCollection("dev-1", collection.ID, store.CollectionUpdate{Name: &name}); err != nil {
		t.Fatalf("update collection: %v", err)
	}

	if err := svc.AddItem("dev-1", "1", nil); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := svc.AddItemToCollection("dev-1", "1", collection.ID); err != nil {
		t.Fatalf("add to collection: %v", err)
	}
	members, err := svc.ItemsByCollection("dev-1", collection.ID)
	if err != nil {
		t.Fatalf("items by collection: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(members))
	}

	if err := svc.RemoveItemFromCollection("dev-1", "1", collection.ID); err != nil {
		t.Fatalf("remove from collection: %v", err)
	}
	if err := svc.DeleteCollection("dev-1", collection.ID); err != nil {
		t.Fatalf("delete collection: %v", err)
	}
	if _, err := svc.CollectionByID("dev-1", collection.ID); !errors.Is(err, store.ErrCollectionNotFound) {
		t.Fatalf("expected collection gone, got %v", err)
	}
}

func TestWishlistServiceProtectsBuiltins(t *testing.T) {
	svc := NewWishlistService(newTestCatalog(), newTestSnapshots(t))
	if err := svc.DeleteCollection("dev-1", constants.CollectionFavorites); !errors.Is(err, store.ErrCollectionProtected) {
		t.Fatalf("expected ErrCollectionProtected, got %v", err)
	}
}

func TestWishlistServiceRejectsUnknownColor(t *testing.T) {
	svc := NewWishlistService(newTestCatalog(), newTestSnapshots(t))
	_, err := svc.CreateCollection("dev-1", CreateCollectionInput{Name: "Gifts", Color: "teal"})
	if !errors.Is(err, store.ErrCollectionColorInvalid) {
		t.Fatalf("expected ErrCollectionColorInvalid, got %v", err)
	}
}

func TestWishlistServiceClearKeepsCollections(t *testing.T) {
	svc := NewWishlistService(newTestCatalog(), newTestSnapshots(t))
	if err := svc.AddItem("dev-1", "1", nil); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := svc.Clear("dev-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	items, _ := svc.Items("dev-1")
	if len(items) != 0 {
		t.Fatalf("expected empty wishlist, got %d", len(items))
	}
	collections, _ := svc.Collections("dev-1")
	if len(collections) != 2 {
		t.Fatalf("expected builtin collections to survive clear, got %d", len(collections))
	}
}
