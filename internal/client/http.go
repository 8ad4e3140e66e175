package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"trendline/internal/api"
	"trendline/internal/domain"
)

type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for base; a nil hc uses http.DefaultClient.
func NewHTTP(base string, hc *http.Client) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

// Fit posts timestamps and data to /fit_trendline/. The server does not
// return an intercept, so it is left zero.
func (c *HTTP) Fit(ctx context.Context, timestamps []int, data []float64) (domain.Trendline, error) {
	var out api.FitResponse
	in := api.FitRequest{Timestamps: timestamps, Data: data}
	if err := c.post(ctx, "/fit_trendline/", in, &out); err != nil {
		return domain.Trendline{}, err
	}
	return domain.Trendline{Slope: out.Slope, RSquared: out.RSquared}, nil
}

func (c *HTTP) CountryTrendline(ctx context.Context, country string) (domain.Trendline, error) {
	var out domain.Trendline
	if err := c.getJSON(ctx, "/country_trendline/"+url.PathEscape(country), &out); err != nil {
		return domain.Trendline{}, err
	}
	return out, nil
}

// CountryImage downloads the rendered PNG for country.
func (c *HTTP) CountryImage(ctx context.Context, country string) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, "/country_image/"+url.PathEscape(country), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/png") {
		return nil, fmt.Errorf("api get /country_image: unexpected content type %q", ct)
	}
	return io.ReadAll(resp.Body)
}

func (c *HTTP) Countries(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.getJSON(ctx, "/countries", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTP) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	resp, err := c.do(ctx, http.MethodPost, path, buf)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

// do sends the request and turns non-2xx responses into errors.
func (c *HTTP) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		defer resp.Body.Close()
		return nil, &StatusError{
			Method:  method,
			Path:    path,
			Status:  resp.Status,
			Code:    resp.StatusCode,
			Message: errorMessage(resp.Body),
		}
	}
	return resp, nil
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method  string
	Path    string
	Status  string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("api %s %s: %s", strings.ToLower(e.Method), e.Path, e.Status)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// errorMessage extracts {"error"} or {"detail"} from an error body.
func errorMessage(r io.Reader) string {
	var body struct {
		Error  string          `json:"error"`
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 1<<16)).Decode(&body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	var verrs api.ValidationErrors
	if err := json.Unmarshal(body.Detail, &verrs); err == nil && len(verrs) > 0 {
		return verrs.Error()
	}
	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return s
	}
	return ""
}
