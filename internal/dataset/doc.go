// Package dataset loads the SDG country indicator spreadsheet and exposes it
// as a year-indexed table with one column per country.
//
// The source workbook has one row per country. Metadata columns (Goal,
// Target, Indicator, ...) are dropped, GeoAreaName becomes the label axis and
// every remaining column header must be a year. The table is then transposed
// so rows are years and columns are countries.
//
// Loader reads the file again on every Load call; there is no cache.
package dataset
