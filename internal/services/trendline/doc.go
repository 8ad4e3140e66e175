// Package trendline fits trendlines to caller data and to countries of the
// SDG dataset, and renders country plots.
//
// Every country operation reloads the table through the domain.TableLoader;
// nothing is cached between calls.
package trendline
