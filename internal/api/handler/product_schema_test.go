package handler

import (
	"net/url"
	"testing"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

func TestParseProductUpdateOnlyTouchesPresentFields(t *testing.T) {
	values := url.Values{}
	values.Set("name", "New Name")
	values.Set("price", "19.99")

	upd, err := parseProductUpdate(values)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if upd.Name == nil || *upd.Name != "New Name" {
		t.Errorf("name = %v, want New Name", upd.Name)
	}
	if upd.Price == nil || *upd.Price != 19.99 {
		t.Errorf("price = %v, want 19.99", upd.Price)
	}
	if upd.Description != nil || upd.Stock != nil || upd.IsActive != nil {
		t.Error("absent fields must stay nil")
	}
}

func TestParseProductUpdatePresentEmptyStringClearsField(t *testing.T) {
	values := url.Values{}
	values.Set("description", "")

	upd, err := parseProductUpdate(values)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if upd.Description == nil || *upd.Description != "" {
		t.Errorf("description = %v, want present empty string", upd.Description)
	}
}

func TestParseProductUpdateRejectsInvalidNumbers(t *testing.T) {
	for _, tc := range []struct{ field, value string }{
		{"price", "abc"},
		{"price", "-5"},
		{"stock", "-1"},
		{"stock", "many"},
		{"is_active", "maybe"},
	} {
		values := url.Values{}
		values.Set(tc.field, tc.value)
		if _, err := parseProductUpdate(values); err == nil {
			t.Errorf("%s=%q: expected an error", tc.field, tc.value)
		}
	}
}

func TestParseProductUpdateClearsCategory(t *testing.T) {
	values := url.Values{}
	values.Set("category_id", "")

	upd, err := parseProductUpdate(values)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if upd.CategoryID == nil || *upd.CategoryID != 0 {
		t.Errorf("category id = %v, want 0 (clears the reference)", upd.CategoryID)
	}
}

func TestPublicProductOmitsInternalFields(t *testing.T) {
	p := domain.Product{
		ID:        77,
		UUID:      "p-uuid",
		Name:      "Laptop",
		Slug:      "laptop",
		Price:     999.99,
		CreatedBy: 7,
		Image:     &domain.Image{URL: "/uploads/a.png", OriginalName: "secret.png"},
	}

	out := toPublicProduct(p)
	if out.UUID != "p-uuid" || out.Slug != "laptop" {
		t.Errorf("public product = %+v", out)
	}
	if out.ImageURL != "/uploads/a.png" {
		t.Errorf("image url = %q", out.ImageURL)
	}
}
