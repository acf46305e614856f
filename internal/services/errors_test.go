package services_test

import (
	"errors"
	"testing"

	"soundcheck/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	err := services.Wrap(services.ErrStore, "prefstore", "save preset", "write failed", errors.New("disk full"))
	if !errors.Is(err, services.ErrStore) {
		t.Fatalf("expected ErrStore marker, got: %v", err)
	}
	want := "store error: prefstore: save preset: write failed: disk full"
	if err.Error() != want {
		t.Fatalf("unexpected message: got %q want %q", err.Error(), want)
	}
}

func TestWrapNilMarkerDefaultsToValidation(t *testing.T) {
	err := services.Wrap(nil, "config", "", "bad value", nil)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation fallback, got: %v", err)
	}
}

func TestWrapEmptyDetail(t *testing.T) {
	err := services.Wrap(services.ErrNotFound, "", "", "", nil)
	if err.Error() != "not found: service failure" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
