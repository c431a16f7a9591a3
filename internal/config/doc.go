// Package config defines the format-agnostic interface for loading a
// parameter grid from a configuration document.
//
// Concrete implementations for specific file formats, such as JSON, HCL and
// YAML, are provided in separate packages.
package config
