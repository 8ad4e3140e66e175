// Package chart renders a country series and its fitted trendline as a PNG
// using gonum/plot.
package chart
