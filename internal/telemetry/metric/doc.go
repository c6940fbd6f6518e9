// Package metric records properties load metrics with Prometheus.
//
// A Registry implements props.Observer, so it can be handed straight to a
// props.Loader. The CLI has no HTTP surface; metrics are exported by writing
// a node_exporter textfile after each command (see WriteTextfile).
package metric
