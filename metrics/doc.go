// Package metrics instruments shortest-path queries with Prometheus metrics.
//
// A Collector registers its metrics on a prometheus.Registerer and runs
// queries through dijkstra.ShortestPaths with observation hooks attached:
//
//	sssp_queries_total{outcome="ok"|"error"}   counter
//	sssp_settled_vertices_total                counter
//	sssp_stale_entries_total                   counter
//	sssp_relaxations_total                     counter
//	sssp_query_duration_seconds                histogram
//	sssp_unreachable_vertices                  gauge (last successful query)
//
// Event counts are accumulated per query and added once it returns, so a
// Collector may be shared by concurrent queries.
package metrics
