package database

import (
	"context"
	"testing"
)

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, ok := db.GetSetting(ctx, "pause_mode"); ok {
		t.Fatalf("expected missing setting")
	}
	if err := db.SetSetting(ctx, "pause_mode", "display"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := db.SetSetting(ctx, "pause_mode", "suspend"); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}
	v, ok := db.GetSetting(ctx, "pause_mode")
	if !ok || v != "suspend" {
		t.Fatalf("GetSetting = %q, %v", v, ok)
	}
	if err := db.SetSetting(ctx, "pause_mode", ""); err != nil {
		t.Fatalf("SetSetting empty failed: %v", err)
	}
	if _, ok := db.GetSetting(ctx, "pause_mode"); ok {
		t.Fatalf("empty value should read back as unset")
	}
}
