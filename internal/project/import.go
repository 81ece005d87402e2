// Package project imports calculator project files. A project file lists
// components (profile type, dimensions, material) in JSON or XML form;
// the importer normalizes dimensions to mm, validates them against the
// profile registry and computes the section properties of every valid
// record. Malformed records are skipped and reported, not recovered.
package project

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gosection/internal/material"
	"github.com/alexiusacademia/gosection/internal/profile"
	"github.com/alexiusacademia/gosection/internal/units"
)

// Record is one raw component entry from a project file.
type Record struct {
	Name       string             `json:"name"`
	Profile    string             `json:"profile"`
	Material   string             `json:"material,omitempty"`
	Dimensions profile.Dimensions `json:"dimensions"`
}

// File is the parsed shape of a project document.
type File struct {
	Name       string   `json:"name"`
	Unit       string   `json:"unit,omitempty"`
	Components []Record `json:"components"`
}

// Entry is a successfully imported and computed component.
type Entry struct {
	Name       string
	Profile    profile.Type
	Dimensions profile.Dimensions // normalized to mm
	Material   string
	Density    float64 // kg/m³
	Properties *profile.Properties
	Weight     float64 // kg/m
	Warnings   []string
}

// Result summarizes an import run.
type Result struct {
	Project string
	Entries []Entry
	Skipped int
	Errors  []string // one entry per skipped record, naming the record
}

// Importer turns project files into computed entries.
type Importer struct {
	materials *material.Store
	log       *zap.Logger
}

// NewImporter creates an importer. The material store resolves densities;
// records naming no material (or an unknown one) fall back to
// material.DefaultDensity.
func NewImporter(materials *material.Store, log *zap.Logger) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{materials: materials, log: log}
}

// ImportFile parses and imports a project file, dispatching on extension.
// Unknown extensions are an explicit error.
func (imp *Importer) ImportFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	var file *File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		file, err = parseJSON(data)
	case ".xml":
		file, err = parseXML(data)
	default:
		return nil, fmt.Errorf("unsupported project file extension %q (want .json or .xml)", ext)
	}
	if err != nil {
		return nil, err
	}

	return imp.Import(file)
}

// Import validates and computes every record of a parsed project file.
func (imp *Importer) Import(file *File) (*Result, error) {
	unit := file.Unit
	if unit == "" {
		unit = "mm"
	}

	result := &Result{Project: file.Name}
	for i, rec := range file.Components {
		entry, err := imp.importRecord(rec, unit)
		if err != nil {
			name := rec.Name
			if name == "" {
				name = fmt.Sprintf("record %d", i+1)
			}
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", name, err))
			imp.log.Debug("record skipped", zap.String("record", name), zap.Error(err))
			continue
		}
		result.Entries = append(result.Entries, *entry)
	}

	imp.log.Debug("project imported",
		zap.String("project", file.Name),
		zap.Int("imported", len(result.Entries)),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

func (imp *Importer) importRecord(rec Record, unit string) (*Entry, error) {
	t, err := profile.ParseType(rec.Profile)
	if err != nil {
		return nil, err
	}

	dims, err := units.ConvertDimensions(rec.Dimensions, unit, "mm")
	if err != nil {
		return nil, err
	}

	validation := profile.Validate(t, dims)
	if !validation.IsValid {
		return nil, fmt.Errorf("invalid dimensions: %s", strings.Join(validation.Errors, "; "))
	}

	density := material.DefaultDensity
	materialName := rec.Material
	if imp.materials != nil && materialName != "" {
		if m, err := imp.materials.GetByName(materialName); err == nil {
			density = m.Density
		} else {
			validation.Warnings = append(validation.Warnings,
				fmt.Sprintf("unknown material %q, using default density", materialName))
		}
	}

	props, err := profile.Calculate(t, dims)
	if err != nil {
		return nil, err
	}
	weight, err := profile.WeightPerLength(t, dims, density)
	if err != nil {
		return nil, err
	}

	return &Entry{
		Name:       rec.Name,
		Profile:    t,
		Dimensions: dims,
		Material:   materialName,
		Density:    density,
		Properties: props,
		Weight:     weight,
		Warnings:   validation.Warnings,
	}, nil
}

func parseJSON(data []byte) (*File, error) {
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode project JSON: %w", err)
	}
	return &file, nil
}

// XML project document shape:
//
//	<project name="..." unit="mm">
//	  <component name="..." profile="round_tube" material="steel S355">
//	    <dimension name="diameter" value="100"/>
//	  </component>
//	</project>
type xmlProject struct {
	XMLName    xml.Name       `xml:"project"`
	Name       string         `xml:"name,attr"`
	Unit       string         `xml:"unit,attr"`
	Components []xmlComponent `xml:"component"`
}

type xmlComponent struct {
	Name       string         `xml:"name,attr"`
	Profile    string         `xml:"profile,attr"`
	Material   string         `xml:"material,attr"`
	Dimensions []xmlDimension `xml:"dimension"`
}

type xmlDimension struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

func parseXML(data []byte) (*File, error) {
	var doc xmlProject
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode project XML: %w", err)
	}

	file := &File{Name: doc.Name, Unit: doc.Unit}
	for _, c := range doc.Components {
		rec := Record{
			Name:       c.Name,
			Profile:    c.Profile,
			Material:   c.Material,
			Dimensions: make(profile.Dimensions, len(c.Dimensions)),
		}
		for _, d := range c.Dimensions {
			value, err := strconv.ParseFloat(strings.TrimSpace(d.Value), 64)
			if err != nil {
				return nil, fmt.Errorf("component %q: dimension %q is not numeric: %q", c.Name, d.Name, d.Value)
			}
			rec.Dimensions[d.Name] = value
		}
		file.Components = append(file.Components, rec)
	}
	return file, nil
}
