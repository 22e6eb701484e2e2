package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/target/settle-ui-api/internal/domain/model"
	"github.com/target/settle-ui-api/internal/ports"
)

// doStream performs a request whose happy path is a binary stream. The
// back office signals failure by answering with a JSON envelope instead
// of the file, so the content type decides how the body is read.
func (c *Client) doStream(req *http.Request, fallbackName string) (ports.FileStream, error) {
	res, err := c.client.Do(req)
	if err != nil {
		return ports.FileStream{}, fmt.Errorf("call back office: %w", err)
	}

	contentType := res.Header.Get("Content-Type")
	if strings.HasPrefix(strings.ToLower(contentType), "application/json") {
		defer func() {
			_, _ = io.Copy(io.Discard, res.Body)
			_ = res.Body.Close()
		}()
		var env envelope
		if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
			return ports.FileStream{}, fmt.Errorf("decode envelope: %w", err)
		}
		if !env.Success {
			return ports.FileStream{}, envelopeError(env)
		}
		return ports.FileStream{}, fmt.Errorf("unexpected JSON response when downloading file")
	}

	return ports.FileStream{
		FileName:    fileNameFromDisposition(res.Header.Get("Content-Disposition"), fallbackName),
		ContentType: contentType,
		Body:        res.Body,
	}, nil
}

// fileNameFromDisposition extracts the server-chosen filename from a
// Content-Disposition header, falling back to the given default.
func fileNameFromDisposition(header, fallback string) string {
	if header == "" {
		return fallback
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return fallback
	}
	if name := params["filename"]; name != "" {
		return name
	}
	return fallback
}

// DownloadAnnotated streams the batch spreadsheet annotated with
// validation results.
func (c *Client) DownloadAnnotated(ctx context.Context, batchID string) (ports.FileStream, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/ImportExcel/"+batchID+"/annotated", nil)
	if err != nil {
		return ports.FileStream{}, err
	}
	return c.doStream(req, "annotated.xlsx")
}

// GenerateReport streams the settlement report for a representative.
func (c *Client) GenerateReport(ctx context.Context, in model.ReportRequest) (ports.FileStream, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return ports.FileStream{}, fmt.Errorf("encode request: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/api/ImportExcel/crp-settlement", bytes.NewReader(payload))
	if err != nil {
		return ports.FileStream{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	fallback := fmt.Sprintf("CRP_Settlement_%s.xlsx", in.TeamRepresentativeID)
	return c.doStream(req, fallback)
}
