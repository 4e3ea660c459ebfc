package tablesclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

var DefaultRetry = RetryConfig{
	MaxAttempts: 2,
	BaseDelay:   200 * time.Millisecond,
	MaxDelay:    5 * time.Second,
}

// doWithRetry executa a requisição com backoff exponencial. Só repete falhas de rede e respostas 5xx.
// buildReq é chamado a cada tentativa porque o corpo da requisição é consumido no envio.
func doWithRetry(ctx context.Context, client *http.Client, cfg RetryConfig, buildReq func() (*http.Request, error)) (*http.Response, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultRetry.MaxAttempts
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = DefaultRetry.MaxDelay
	}

	var (
		lastErr  error
		lastResp *http.Response
	)
	delay := cfg.BaseDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		req, err := buildReq()
		if err != nil {
			return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
		}

		resp, err := client.Do(req)
		if err == nil && resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		if err != nil {
			lastErr = err
			lastResp = nil
		} else {
			lastErr = nil
			lastResp = resp
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		// Descartar o corpo da resposta com erro antes de tentar de novo
		if resp != nil {
			_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
			resp.Body.Close()
		}

		logrus.WithFields(logrus.Fields{
			"attempt":      attempt,
			"max_attempts": cfg.MaxAttempts,
			"delay":        delay.String(),
			"url":          req.URL.Path,
		}).Debug("Requisição ao backend de tabelas falhou, tentando novamente")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}

		delay *= 2
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	// A última resposta 5xx é devolvida para o chamador classificar o status
	if lastResp != nil {
		return lastResp, nil
	}

	return nil, lastErr
}
