package cache

import (
	"path/filepath"
	"testing"

	"weather-cli/internal/models"
)

func TestGeocodeCache_PutGet(t *testing.T) {
	c, err := Open(filepath.Join(t.TempDir(), "geocode.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer c.Close()

	coord := models.Coordinate{Lat: 39.5296, Lon: -119.8138}
	if err := c.Put("89501", coord); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok, err := c.Get("89501")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit for 89501")
	}
	if got != coord {
		t.Errorf("got %v, want %v", got, coord)
	}
}

func TestGeocodeCache_Miss(t *testing.T) {
	c, err := Open(filepath.Join(t.TempDir(), "geocode.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer c.Close()

	_, ok, err := c.Get("00000")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("expected a miss for an empty cache")
	}
}

func TestGeocodeCache_Replace(t *testing.T) {
	c, err := Open(filepath.Join(t.TempDir(), "geocode.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer c.Close()

	if err := c.Put("89501", models.Coordinate{Lat: 1, Lon: 2}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	want := models.Coordinate{Lat: 39.5296, Lon: -119.8138}
	if err := c.Put("89501", want); err != nil {
		t.Fatalf("Put (replace) failed: %v", err)
	}

	got, ok, err := c.Get("89501")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
