package db

import (
	"path/filepath"
	"testing"
	"time"
)

func openTest(t *testing.T) *DB {
	t.Helper()
	d, err := Open(filepath.Join(t.TempDir(), "tarefa.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func TestPutAndGet(t *testing.T) {
	d := openTest(t)

	if err := d.Put("tasks", "[]"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	value, ok, err := d.Get("tasks")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected slot to exist")
	}
	if value != "[]" {
		t.Errorf("Expected [], got %q", value)
	}
}

func TestGetAbsentSlot(t *testing.T) {
	d := openTest(t)

	value, ok, err := d.Get("missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || value != "" {
		t.Errorf("Expected absent slot, got ok=%v value=%q", ok, value)
	}
}

func TestPutOverwrites(t *testing.T) {
	d := openTest(t)

	if err := d.Put("theme", "false"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := d.Put("theme", "true"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	value, ok, err := d.Get("theme")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if value != "true" {
		t.Errorf("Expected true, got %q", value)
	}
}

func TestPutStampsRetention(t *testing.T) {
	d := openTest(t)

	before := time.Now()
	if err := d.Put("tasks", "[]"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	var slot Slot
	if err := d.conn.Where("name = ?", "tasks").First(&slot).Error; err != nil {
		t.Fatalf("Failed to read slot row: %v", err)
	}

	min := before.Add(Retention - time.Minute)
	max := time.Now().Add(Retention + time.Minute)
	if slot.ExpiresAt.Before(min) || slot.ExpiresAt.After(max) {
		t.Errorf("ExpiresAt %v not ~365 days ahead", slot.ExpiresAt)
	}
}

func TestExpiredSlotReadsAsAbsent(t *testing.T) {
	d := openTest(t)

	expired := Slot{
		Name:      "tasks",
		Value:     "[]",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	if err := d.conn.Create(&expired).Error; err != nil {
		t.Fatalf("Failed to seed expired slot: %v", err)
	}

	_, ok, err := d.Get("tasks")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Expected expired slot to read as absent")
	}

	// A fresh write revives the slot
	if err := d.Put("tasks", "[1]"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	value, ok, err := d.Get("tasks")
	if err != nil || !ok {
		t.Fatalf("Get after rewrite: ok=%v err=%v", ok, err)
	}
	if value != "[1]" {
		t.Errorf("Expected [1], got %q", value)
	}
}
