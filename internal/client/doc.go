// Package client provides an HTTP client for the trendline API.
//
// It mirrors the server's endpoints:
//   - Fitting a trendline to caller data.
//   - Fetching a country's trendline.
//   - Downloading a country's plot.
//   - Listing the dataset's countries.
//
// All requests accept a context for cancellation and deadlines. Non-2xx
// statuses are returned as errors with the HTTP method, path, status text and
// the server's error message when it sent one.
package client
