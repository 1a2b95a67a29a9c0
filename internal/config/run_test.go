package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRunConfig(t *testing.T) {
	cfg := Default()

	if cfg.GetVegetationPath() != DefaultVegetationPath {
		t.Errorf("GetVegetationPath() = %q, want %q", cfg.GetVegetationPath(), DefaultVegetationPath)
	}
	if cfg.GetZonePath() != DefaultZonePath {
		t.Errorf("GetZonePath() = %q, want %q", cfg.GetZonePath(), DefaultZonePath)
	}
	if cfg.GetWorkbookPath() != DefaultWorkbookPath {
		t.Errorf("GetWorkbookPath() = %q, want %q", cfg.GetWorkbookPath(), DefaultWorkbookPath)
	}
	if cfg.GetShearVariable() != "" {
		t.Errorf("GetShearVariable() = %q, want empty (reader default)", cfg.GetShearVariable())
	}
	if cfg.GetCodeColumn() != "Code" {
		t.Errorf("GetCodeColumn() = %q, want Code", cfg.GetCodeColumn())
	}
	if cfg.GetResistanceColumn() != "shear_resis" {
		t.Errorf("GetResistanceColumn() = %q, want shear_resis", cfg.GetResistanceColumn())
	}
	if cfg.GetRoughnessColumn() != "n_val" {
		t.Errorf("GetRoughnessColumn() = %q, want n_val", cfg.GetRoughnessColumn())
	}
}

func TestLoadRunConfigOverlaysDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "run.json")
	testJSON := `{
  "vegetation_path": "other/veg.asc",
  "shear_variable": "taus_max"
}`
	if err := os.WriteFile(configPath, []byte(testJSON), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GetVegetationPath() != "other/veg.asc" {
		t.Errorf("GetVegetationPath() = %q, want other/veg.asc", cfg.GetVegetationPath())
	}
	if cfg.GetShearVariable() != "taus_max" {
		t.Errorf("GetShearVariable() = %q, want taus_max", cfg.GetShearVariable())
	}
	// unspecified fields keep defaults
	if cfg.GetZonePath() != DefaultZonePath {
		t.Errorf("GetZonePath() = %q, want default", cfg.GetZonePath())
	}
}

func TestLoadRunConfigRejectsNonJSON(t *testing.T) {
	if _, err := Load("run.yaml"); err == nil {
		t.Error("expected error for non-.json extension")
	}
}

func TestLoadRunConfigMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadRunConfigBadJSON(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(configPath, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(configPath); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
