// SPDX-License-Identifier: MIT

// Package tableio reads and writes table.Table values as CSV.
//
// ReadCSV infers a kind per column: Number when every cell parses as a
// finite float, String otherwise. WithKinds pins kinds explicitly, which is
// the only way to get Time columns ("2006-01-02 15:04:05" or "15:04:05").
// A leading UTF-8 or UTF-16 byte-order mark is honoured and stripped.
package tableio
