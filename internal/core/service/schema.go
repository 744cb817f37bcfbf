package service

import "github.com/sleuren/sleurencli/internal/core/resource"

// Schemas of the kinds the monitoring service exposes.
var (
	ServerSchema = resource.Schema{
		Kind:      "servers",
		Path:      "server",
		Key:       "servers",
		UniqueKey: "id",
		Columns: []resource.Column{
			{Name: "id", Title: "ID"},
			{Name: "name", Title: "Name"},
			{Name: "os", Title: "OS"},
			{Name: "ip", Title: "IP"},
			{Name: "cpu", Title: "CPU"},
			{Name: "mem", Title: "Mem"},
			{Name: "disk", Title: "Disk"},
			{Name: "load", Title: "Load"},
			{Name: "tags", Title: "Tags"},
			{Name: "issues", Title: "Issues"},
		},
	}

	SiteSchema = resource.Schema{
		Kind:      "sites",
		Path:      "site",
		Key:       "sites",
		UniqueKey: "id",
		Columns: []resource.Column{
			{Name: "id", Title: "ID"},
			{Name: "url", Title: "URL"},
			{Name: "name", Title: "Name"},
			{Name: "location", Title: "Location"},
			{Name: "issues", Title: "Issues"},
		},
	}

	TokenSchema = resource.Schema{
		Kind:      "tokens",
		Path:      "token",
		Key:       "tokens",
		UniqueKey: "token",
		Columns:   []resource.Column{{Name: "token", Title: "Token"}},
	}

	// StatisticsSchema takes its columns from the response.
	StatisticsSchema = resource.Schema{
		Kind:        "statistics",
		Path:        "statistics",
		Key:         "statistics",
		AllowObject: true,
	}
)
