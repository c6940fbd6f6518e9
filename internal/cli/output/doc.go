// Package output renders command results as a table, JSON or YAML.
//
// Values that know their own tabular shape implement Tabler. Slices of
// structs are rendered one row per element with headers taken from the
// `table` or `json` tag; maps are rendered as sorted KEY/VALUE rows.
package output
