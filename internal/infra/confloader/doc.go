// Package confloader provides the configuration loading mechanism.
//
// It wraps koanf and merges sources in priority order (highest first):
//
//  1. Command-line flags (LoadMap)
//  2. Environment variables (SLEUREN_*)
//  3. The YAML settings file
//  4. Default values
//
// The merged view can be written back as YAML with SaveFile.
package confloader
