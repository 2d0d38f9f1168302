// Package snapshotter merges the output of every requested section into one
// briefing snapshot.
//
// # Core Types
//
// Aggregator: runs one goroutine per distinct requested section
//
//	type Aggregator struct {
//	    Version string             // Tool version recorded in the header
//	    Factory collector.Factory  // Collector factory (optional)
//	    Clock   clock.PassiveClock // Stamps CapturedAt (optional)
//	}
//
// Snapshot: the merged briefing
//
//	type Snapshot struct {
//	    Header                                   // API version, kind, metadata
//	    Sections   map[section.Name]section.Result
//	    CapturedAt time.Time
//	}
//
// # Failure Isolation
//
// Goroutines never return an error to the group, so one slow or failing
// section does not cancel the others. Each result is one of:
//
//   - ok: the collector returned a payload
//   - error: the collector failed, panicked, or the name is unknown
//   - unavailable: the collector's external tool is not installed
//
// # Usage
//
//	agg := &snapshotter.Aggregator{Version: "v1.0.0"}
//	snap := agg.Aggregate(ctx, cfg.Sections, cfg)
//
// # Observability
//
// Prometheus metrics are registered on the default registry:
//
//	briefing_aggregation_duration_seconds
//	briefing_error_sections
//	briefing_section_duration_seconds{section}
//	briefing_section_total{section,status}
package snapshotter
