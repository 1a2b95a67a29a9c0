// Package config loads run configuration for the coupling pipeline.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default input locations and source names. These mirror the layout of
// the watershed data directory the model ships with.
const (
	DefaultVegetationPath = "data/vegclass_2z.asc"
	DefaultZonePath       = "data/zonemap_2z.asc"
	DefaultWorkbookPath   = "data/casimir-data-requirements.xlsx"
)

// RunConfig holds the run parameters for one coupling step. Fields are
// pointers so a partial JSON file overlays the defaults; use the Get*
// methods for resolved values.
type RunConfig struct {
	// Input rasters and workbook
	VegetationPath *string `json:"vegetation_path,omitempty"`
	ZonePath       *string `json:"zone_path,omitempty"`
	WorkbookPath   *string `json:"workbook_path,omitempty"`

	// NetCDF shear variable name
	ShearVariable *string `json:"shear_variable,omitempty"`

	// Workbook column names. The code column may occur more than once
	// in the sheet; the last occurrence is used.
	CodeColumn       *string `json:"code_column,omitempty"`
	ResistanceColumn *string `json:"resistance_column,omitempty"`
	RoughnessColumn  *string `json:"roughness_column,omitempty"`
}

// Default returns a RunConfig with every field unset, so the Get*
// methods return the built-in defaults.
func Default() *RunConfig {
	return &RunConfig{}
}

// Load reads a RunConfig from a JSON file. Fields omitted from the file
// keep their defaults, so partial configs are safe.
func Load(path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

func (c *RunConfig) GetVegetationPath() string {
	if c.VegetationPath != nil {
		return *c.VegetationPath
	}
	return DefaultVegetationPath
}

func (c *RunConfig) GetZonePath() string {
	if c.ZonePath != nil {
		return *c.ZonePath
	}
	return DefaultZonePath
}

func (c *RunConfig) GetWorkbookPath() string {
	if c.WorkbookPath != nil {
		return *c.WorkbookPath
	}
	return DefaultWorkbookPath
}

// GetShearVariable returns the configured NetCDF shear variable name,
// or empty to let the mesh reader use its default.
func (c *RunConfig) GetShearVariable() string {
	if c.ShearVariable != nil {
		return *c.ShearVariable
	}
	return ""
}

func (c *RunConfig) GetCodeColumn() string {
	if c.CodeColumn != nil {
		return *c.CodeColumn
	}
	return "Code"
}

func (c *RunConfig) GetResistanceColumn() string {
	if c.ResistanceColumn != nil {
		return *c.ResistanceColumn
	}
	return "shear_resis"
}

func (c *RunConfig) GetRoughnessColumn() string {
	if c.RoughnessColumn != nil {
		return *c.RoughnessColumn
	}
	return "n_val"
}
