// SPDX-License-Identifier: MIT

// Package table provides a small, statically typed, in-memory table: an
// ordered sequence of records over a fixed schema of named, typed columns.
//
// The package provides:
//
//   - Kind and Value: explicit Number / String / Time variants with a total
//     order (Compare) and a comparable Key for map indexing.
//   - Schema: ordered (name, kind) pairs, validated at construction time.
//   - Table: immutable records; derivations (WithColumn, ReplaceColumn,
//     Select, Filter, SortBy) always return a new Table.
//   - GroupBy: deterministic grouping ordered ascending by group key.
//   - Builder: row-at-a-time construction with per-row validation.
//
// Numeric policy mirrors the matrix package: NaN and ±Inf are rejected in
// Number cells at ingestion, so downstream means and products never see them.
//
// Every constructor and accessor returns sentinel errors (see errors.go)
// wrapped with call-site context; callers match them with errors.Is.
package table
