// Package api serves the trendline HTTP API.
//
// HTTP API
//
//	GET /say_hi/
//	    Return {"Hi": "There"}.
//
//	GET /say_hello/{name}
//	    Return {"Hello": name}.
//
//	POST /fit_trendline/ {"timestamps": [int], "data": [float]}
//	    Fit a line and return {"slope", "r_squared"}. Timestamps and data must
//	    be non-empty, timestamps ascending, data non-negative and both of equal
//	    length. Violations return 422 with a "detail" list.
//
//	GET /country_trendline/{country}
//	    Fit the country's series from the dataset and return
//	    {"slope", "r_squared", "intercept"}.
//
//	GET /country_image/{country}
//	    Render <country>.png and return it as image/png, or a JSON
//	    {"error": ...} object when the country is unknown or rendering fails.
//
//	GET /countries
//	    List the countries in the dataset.
//
//	GET /healthz
//	    Liveness probe.
//
// Behaviour
//
//   - The dataset is reloaded on every country request.
//   - Responses are JSON except images. Large bodies are gzip-compressed when
//     the client accepts it.
//   - An access log records method, path, remote, status, bytes and duration
//     for each request.
package api
