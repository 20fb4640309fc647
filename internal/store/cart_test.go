package store

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rephone-next/internal/models"
)

func cartItem(id string, price float64) CartLineItem {
	return CartLineItem{
		ID:    id,
		Name:  "Phone " + id,
		Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		Image: "/images/" + id + ".jpg",
	}
}

func TestCartAddAccumulatesQuantity(t *testing.T) {
	cart := NewCart()
	cart.Add(cartItem("1", 699), 1)
	cart.Add(cartItem("1", 699), 2)

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", items[0].Quantity)
	}
}

func TestCartAddDefaultsQuantityToOne(t *testing.T) {
	cart := NewCart()
	cart.Add(cartItem("1", 699), 0)
	cart.Add(cartItem("2", 599), -5)

	for _, item := range cart.Items() {
		if item.Quantity != 1 {
			t.Fatalf("item %s: expected quantity 1, got %d", item.ID, item.Quantity)
		}
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := NewCart()
	cart.Add(cartItem("1", 699), 2)

	cart.UpdateQuantity("1", 5)
	if got := cart.Items()[0].Quantity; got != 5 {
		t.Fatalf("expected quantity 5, got %d", got)
	}

	// 未知 ID 无操作
	cart.UpdateQuantity("missing", 3)
	if cart.Len() != 1 {
		t.Fatalf("expected 1 line item, got %d", cart.Len())
	}

	// 非正数等价于移除
	cart.UpdateQuantity("1", 0)
	if cart.Len() != 0 {
		t.Fatalf("expected empty cart, got %d items", cart.Len())
	}
}

func TestCartRemoveIdempotent(t *testing.T) {
	cart := NewCart()
	cart.Add(cartItem("1", 699), 1)
	cart.Remove("1")
	cart.Remove("1")
	if cart.Len() != 0 {
		t.Fatalf("expected empty cart, got %d items", cart.Len())
	}
}

func TestCartTotals(t *testing.T) {
	cart := NewCart()
	cart.Add(cartItem("1", 699), 2)
	cart.Add(cartItem("2", 599), 1)

	if got := cart.TotalItems(); got != 3 {
		t.Fatalf("expected 3 total items, got %d", got)
	}
	want := decimal.NewFromInt(1997)
	if !cart.TotalPrice().Equal(want) {
		t.Fatalf("expected total %s, got %s", want, cart.TotalPrice())
	}
}

func TestCartSnapshotRoundTrip(t *testing.T) {
	cart := NewCart()
	cart.Add(cartItem("1", 699), 2)
	cart.Add(cartItem("2", 599), 1)

	raw, err := cart.MarshalSnapshot()
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	restored, err := RestoreCart(raw)
	if err != nil {
		t.Fatalf("restore cart: %v", err)
	}
	if restored.Len() != 2 {
		t.Fatalf("expected 2 line items, got %d", restored.Len())
	}
	if restored.TotalItems() != 3 {
		t.Fatalf("expected 3 total items, got %d", restored.TotalItems())
	}
}

func TestRestoreCartLegacyBareArray(t *testing.T) {
	// 浏览器端迁移数据：不带版本封皮的裸数组
	raw := []byte(`[{"id":"1","name":"iPhone 13 Pro","price":"699","image":"/a.jpg","quantity":2}]`)
	cart, err := RestoreCart(raw)
	if err != nil {
		t.Fatalf("restore legacy cart: %v", err)
	}
	if cart.Len() != 1 {
		t.Fatalf("expected 1 line item, got %d", cart.Len())
	}
	if cart.TotalItems() != 2 {
		t.Fatalf("expected 2 total items, got %d", cart.TotalItems())
	}
}

func TestRestoreCartSkipsInvalidEntries(t *testing.T) {
	raw := []byte(`[{"id":"","quantity":1},{"id":"1","quantity":0},{"id":"2","quantity":1}]`)
	cart, err := RestoreCart(raw)
	if err != nil {
		t.Fatalf("restore cart: %v", err)
	}
	if cart.Len() != 1 {
		t.Fatalf("expected 1 valid line item, got %d", cart.Len())
	}
	if cart.Items()[0].ID != "2" {
		t.Fatalf("expected item 2, got %s", cart.Items()[0].ID)
	}
}

func TestRestoreCartMalformed(t *testing.T) {
	if _, err := RestoreCart([]byte(`{not json`)); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestRestoreCartEmptyPayload(t *testing.T) {
	cart, err := RestoreCart(nil)
	if err != nil {
		t.Fatalf("restore empty payload: %v", err)
	}
	if cart.Len() != 0 {
		t.Fatalf("expected empty cart, got %d items", cart.Len())
	}
}
