package identity

import "testing"

func TestPageUUIDIsStable(t *testing.T) {
	a := PageUUID("debouchage-canalisation-paris")
	b := PageUUID("debouchage-canalisation-paris")
	if a != b {
		t.Fatalf("same slug should produce the same id: %s vs %s", a, b)
	}
	if a == PageUUID("debouchage-canalisation-lyon") {
		t.Fatalf("different slugs should produce different ids")
	}
}

func TestBlockInstanceUUIDVariesByPosition(t *testing.T) {
	a := BlockInstanceUUID("page", "hero", 1)
	b := BlockInstanceUUID("page", "hero", 2)
	if a == b {
		t.Fatalf("position must participate in the identity")
	}
	if a != BlockInstanceUUID("page", "hero", 1) {
		t.Fatalf("identity must be reproducible")
	}
}

func TestVariantSeedIsStableAndPositive(t *testing.T) {
	a := VariantSeed("biz", "Débouchage canalisation", "Paris")
	b := VariantSeed("biz", "Débouchage canalisation", "Paris")
	if a != b {
		t.Fatalf("seed must be reproducible: %d vs %d", a, b)
	}
	if a < 0 {
		t.Fatalf("seed must be non-negative, got %d", a)
	}
	if a == VariantSeed("biz", "Débouchage canalisation", "Lyon") {
		t.Fatalf("city must participate in the seed")
	}
}
