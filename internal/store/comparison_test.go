package store

import (
	"fmt"
	"testing"

	"github.com/rephone-next/internal/constants"
	"github.com/rephone-next/internal/models"
)

func comparisonProduct(id string) models.Product {
	return models.Product{
		ID:          id,
		Name:        "Phone " + id,
		Brand:       "Apple",
		PriceAmount: models.NewMoneyFromInt(699),
	}
}

func TestComparisonAddRejectsDuplicates(t *testing.T) {
	c := NewComparison()
	if !c.Add(comparisonProduct("1")) {
		t.Fatal("expected first add to succeed")
	}
	if c.Add(comparisonProduct("1")) {
		t.Fatal("expected duplicate add to be rejected")
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 product, got %d", c.Len())
	}
}

func TestComparisonCapacity(t *testing.T) {
	c := NewComparison()
	for i := 0; i < constants.MaxComparisonMembers; i++ {
		if !c.Add(comparisonProduct(fmt.Sprintf("p%d", i))) {
			t.Fatalf("add %d should succeed", i)
		}
	}
	if c.Add(comparisonProduct("overflow")) {
		t.Fatal("expected add beyond capacity to be rejected")
	}
	if c.Len() != constants.MaxComparisonMembers {
		t.Fatalf("expected %d products, got %d", constants.MaxComparisonMembers, c.Len())
	}
}

func TestComparisonRemoveAndClear(t *testing.T) {
	c := NewComparison()
	c.Add(comparisonProduct("1"))
	c.Add(comparisonProduct("2"))

	c.Remove("1")
	c.Remove("1")
	if c.IsInComparison("1") {
		t.Fatal("expected product 1 removed")
	}
	if !c.IsInComparison("2") {
		t.Fatal("expected product 2 to remain")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("expected empty comparison, got %d", c.Len())
	}
}

func TestComparisonStateRoundTrip(t *testing.T) {
	c := NewComparison()
	c.Add(comparisonProduct("1"))
	c.Add(comparisonProduct("2"))

	raw, err := c.MarshalState()
	if err != nil {
		t.Fatalf("marshal state: %v", err)
	}
	restored, err := RestoreComparison(raw)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.Len() != 2 {
		t.Fatalf("expected 2 products, got %d", restored.Len())
	}
	if !restored.IsInComparison("1") || !restored.IsInComparison("2") {
		t.Fatal("expected both products restored")
	}
}

func TestRestoreComparisonMalformed(t *testing.T) {
	if _, err := RestoreComparison([]byte(`{bad`)); err == nil {
		t.Fatal("expected error for malformed payload")
	}
	c, err := RestoreComparison(nil)
	if err != nil {
		t.Fatalf("restore empty payload: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty comparison, got %d", c.Len())
	}
}
