package logic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"inkwell/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_converter.go -package mocks inkwell/logic IContentConverter

// IContentConverter turns article markdown into HTML fit for a federation
// payload. Conversion is delegated to an external service; the result is
// sanitized locally before anything downstream sees it.
type IContentConverter interface {
	MarkdownToHtml(text string) (string, error)
}

type contentConverter struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	sanitizer *bluemonday.Policy
}

func NewContentConverter(cfg *shared.Config, logger shared.ILogger, userAgent shared.IUserAgent) IContentConverter {
	return &contentConverter{cfg, logger, userAgent, bluemonday.UGCPolicy()}
}

type convertRequest struct {
	Markdown string `json:"markdown"`
}

type convertResponse struct {
	Html string `json:"html"`
}

func (cc *contentConverter) MarkdownToHtml(text string) (string, error) {

	reqBody, err := json.Marshal(convertRequest{Markdown: text})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequest("POST", cc.cfg.ConverterUrl, bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	cc.userAgent.AddUserAgent(req)

	client := http.Client{Timeout: time.Second * 10}
	resp, err := client.Do(req)
	if err != nil {
		cc.logger.Warnf("Markdown converter request failed: %v", err)
		return "", fmt.Errorf("%w: markdown converter: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		cc.logger.Warnf("Markdown converter returned status %d", resp.StatusCode)
		return "", fmt.Errorf("%w: markdown converter returned %d", ErrTransport, resp.StatusCode)
	}
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var convResp convertResponse
	if err = json.Unmarshal(bodyBytes, &convResp); err != nil {
		return "", fmt.Errorf("%w: markdown converter response: %v", ErrTransport, err)
	}
	return cc.sanitizer.Sanitize(convResp.Html), nil
}
