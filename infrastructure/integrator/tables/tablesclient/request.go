package tablesclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/pkg/errors"
	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
)

// request descreve uma chamada a /tables/{resource}
type request struct {
	method string
	// resource é o caminho relativo a /tables, por exemplo "gas_stations/1"
	resource string
	query    url.Values
	// rawQuery é anexado sem codificação, para filtros como "sale_date>=..."
	rawQuery string
	body     any
}

func (c *TablesClient) endpoint(r request) (string, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return "", errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join("/", endpoint.Path, "tables", r.resource)

	rawQuery := ""
	if len(r.query) > 0 {
		rawQuery = r.query.Encode()
	}
	if r.rawQuery != "" {
		if rawQuery != "" {
			rawQuery += "&"
		}
		rawQuery += r.rawQuery
	}
	endpoint.RawQuery = rawQuery

	return endpoint.String(), nil
}

// retryFor repete apenas métodos idempotentes. Um POST que falha com 5xx pode já ter gravado a linha.
func (c *TablesClient) retryFor(method string) RetryConfig {
	retry := c.retry
	switch method {
	case http.MethodGet, http.MethodPut:
	default:
		retry.MaxAttempts = 1
	}
	return retry
}

// do executa a requisição e decodifica o corpo em out. As falhas são classificadas em
// ErrNetworkFailure, *HTTPError ou ErrMalformedResponse.
func (c *TablesClient) do(ctx context.Context, r request, out any) error {
	target, err := c.endpoint(r)
	if err != nil {
		return err
	}

	var payload []byte
	if r.body != nil {
		payload, err = json.Marshal(r.body)
		if err != nil {
			return errors.Wrap(err, "erro ao serializar o corpo da requisição")
		}
	}

	resp, err := doWithRetry(ctx, c.httpClient, c.retryFor(r.method), func() (*http.Request, error) {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, r.method, target, body)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return errors.Wrapf(errors.Wrap(tablesdomain.ErrNetworkFailure, err.Error()), "%s /tables/%s", r.method, r.resource)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &tablesdomain.HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Method:     r.method,
			Path:       "/tables/" + r.resource,
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(tablesdomain.Malformed("%v", err), "%s /tables/%s", r.method, r.resource)
	}

	return nil
}
