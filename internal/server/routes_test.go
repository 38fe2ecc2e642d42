package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"pdf-metadata-api/internal/images"
	"pdf-metadata-api/internal/pdf"
	"pdf-metadata-api/internal/pdftest"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

const testUploadDir = "test-uploads"

func setupTestServer(apiKey string) *httptest.Server {
	s := &Server{
		APIKey:        apiKey,
		UploadDir:     testUploadDir,
		MaxUploadSize: 5 * 1024 * 1024,
		Resolver:      images.NewResolver(images.NewFetcher(2 * time.Second)),
		Stamper:       pdf.NewStamper(pdf.DefaultBranding()),
	}
	return httptest.NewServer(s.RegisterRoutes())
}

func TestMain(m *testing.M) {
	code := m.Run()
	_ = os.RemoveAll(testUploadDir)
	os.Exit(code)
}

// multipartBody builds a form with an optional "pdf" part, an optional image
// part and plain fields.
func multipartBody(t *testing.T, pdfBytes, image []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if pdfBytes != nil {
		part, err := writer.CreateFormFile("pdf", "input.pdf")
		if err != nil {
			t.Fatalf("Failed to create pdf part: %v", err)
		}
		_, _ = part.Write(pdfBytes)
	}
	if image != nil {
		part, err := writer.CreateFormFile("image", "logo.png")
		if err != nil {
			t.Fatalf("Failed to create image part: %v", err)
		}
		_, _ = part.Write(image)
	}
	for k, v := range fields {
		_ = writer.WriteField(k, v)
	}
	writer.Close()
	return &buf, writer.FormDataContentType()
}

func post(t *testing.T, url string, body io.Reader, contentType string, headers map[string]string) *http.Response {
	t.Helper()
	req, _ := http.NewRequest("POST", url, body)
	req.Header.Set("Content-Type", contentType)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request to %s failed: %v", url, err)
	}
	return resp
}

func readMetadata(t *testing.T, serverURL string, raw []byte) pdf.MetadataRecord {
	t.Helper()
	body, ct := multipartBody(t, raw, nil, nil)
	resp := post(t, serverURL+"/pdf/metadata/get", body, ct, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 OK from metadata/get, got %d", resp.StatusCode)
	}
	var rec pdf.MetadataRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		t.Fatalf("Failed to decode metadata: %v", err)
	}
	return rec
}

func assertWatermarked(t *testing.T, out []byte) {
	t.Helper()
	ok, err := pdfapi.HasWatermarks(bytes.NewReader(out), model.NewDefaultConfiguration())
	if err != nil {
		t.Fatalf("Failed to inspect watermarks: %v", err)
	}
	if !ok {
		t.Errorf("Expected the response PDF to carry a watermark")
	}
}

func TestHealth(t *testing.T) {
	server := setupTestServer("secret")
	defer server.Close()

	resp, err := http.Get(server.URL + "/health")
	if err != nil {
		t.Fatalf("Failed to call health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 OK, got %d", resp.StatusCode)
	}
	var result map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["status"] != "OK" || result["service"] != "Metadata-API" {
		t.Errorf("Unexpected health body: %v", result)
	}
}

func TestAPIKey(t *testing.T) {
	server := setupTestServer("secret")
	defer server.Close()
	raw := pdftest.PDF(pdftest.Options{})

	t.Run("missing key", func(t *testing.T) {
		body, ct := multipartBody(t, raw, nil, nil)
		resp := post(t, server.URL+"/pdf/metadata/get", body, ct, nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("Expected 401, got %d", resp.StatusCode)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		body, ct := multipartBody(t, raw, nil, nil)
		resp := post(t, server.URL+"/pdf/metadata/get", body, ct, map[string]string{APIKeyHeader: "nope"})
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("Expected 401, got %d", resp.StatusCode)
		}
	})

	t.Run("valid key", func(t *testing.T) {
		body, ct := multipartBody(t, raw, nil, nil)
		resp := post(t, server.URL+"/pdf/metadata/get", body, ct, map[string]string{APIKeyHeader: "secret"})
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200 OK, got %d", resp.StatusCode)
		}
	})
}

func TestMissingPDF(t *testing.T) {
	server := setupTestServer("")
	defer server.Close()

	for _, path := range []string{"/pdf/watermark", "/pdf/metadata/get", "/pdf/metadata/set"} {
		body, ct := multipartBody(t, nil, nil, map[string]string{"text": "DRAFT"})
		resp := post(t, server.URL+path, body, ct, nil)
		var result map[string]string
		_ = json.NewDecoder(resp.Body).Decode(&result)
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, resp.StatusCode)
		}
		if result["error"] != pdf.ErrMissingFile.Error() {
			t.Errorf("%s: unexpected error message %q", path, result["error"])
		}
	}
}

func TestWatermark(t *testing.T) {
	server := setupTestServer("")
	defer server.Close()
	raw := pdftest.PDF(pdftest.Options{Pages: 2, Info: map[string]string{"Title": "Mine"}})

	t.Run("no content", func(t *testing.T) {
		body, ct := multipartBody(t, raw, nil, map[string]string{"text": "  "})
		resp := post(t, server.URL+"/pdf/watermark", body, ct, nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", resp.StatusCode)
		}
		var result map[string]string
		_ = json.NewDecoder(resp.Body).Decode(&result)
		if !strings.Contains(result["error"], "watermark text or an image") {
			t.Errorf("Unexpected error message %q", result["error"])
		}
	})

	t.Run("invalid color", func(t *testing.T) {
		body, ct := multipartBody(t, raw, nil, map[string]string{"text": "DRAFT", "color": "blue"})
		resp := post(t, server.URL+"/pdf/watermark", body, ct, nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("invalid pdf", func(t *testing.T) {
		body, ct := multipartBody(t, []byte("not a pdf"), nil, map[string]string{"text": "DRAFT"})
		resp := post(t, server.URL+"/pdf/watermark", body, ct, nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusInternalServerError {
			t.Fatalf("Expected 500, got %d", resp.StatusCode)
		}
	})

	t.Run("text", func(t *testing.T) {
		body, ct := multipartBody(t, raw, nil, map[string]string{
			"text":     "DRAFT",
			"color":    "#FF0000",
			"position": "top-right",
			"shadow":   "true",
			"degrees":  "45",
			"opacity":  "0.5",
		})
		resp := post(t, server.URL+"/pdf/watermark", body, ct, nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			msg, _ := io.ReadAll(resp.Body)
			t.Fatalf("Expected 200 OK, got %d: %s", resp.StatusCode, msg)
		}
		if got := resp.Header.Get("Content-Type"); got != "application/pdf" {
			t.Errorf("Expected application/pdf, got %q", got)
		}
		if got := resp.Header.Get("Content-Disposition"); got != `attachment; filename="watermarked.pdf"` {
			t.Errorf("Unexpected Content-Disposition %q", got)
		}
		out, _ := io.ReadAll(resp.Body)
		assertWatermarked(t, out)

		rec := readMetadata(t, server.URL, out)
		if rec.Technical.PageCount != 2 {
			t.Errorf("Expected 2 pages, got %d", rec.Technical.PageCount)
		}
		if rec.Metadata.Producer != "Metadata-API" || rec.Metadata.Title != "Metadata-API Document" {
			t.Errorf("Expected branded metadata, got %+v", rec.Metadata)
		}
		if rec.CustomFields.Comments != "Processed by Metadata-API" {
			t.Errorf("Expected provenance comment, got %q", rec.CustomFields.Comments)
		}
	})

	t.Run("uploaded image", func(t *testing.T) {
		body, ct := multipartBody(t, raw, pdftest.PNG(40, 20), map[string]string{"scale": "2"})
		resp := post(t, server.URL+"/pdf/watermark", body, ct, nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			msg, _ := io.ReadAll(resp.Body)
			t.Fatalf("Expected 200 OK, got %d: %s", resp.StatusCode, msg)
		}
		out, _ := io.ReadAll(resp.Body)
		assertWatermarked(t, out)
	})

	t.Run("quarter turns", func(t *testing.T) {
		for _, deg := range []string{"90", "-90"} {
			body, ct := multipartBody(t, raw, pdftest.PNG(40, 20), map[string]string{
				"text":     "DRAFT",
				"position": "bottom-left",
				"degrees":  deg,
			})
			resp := post(t, server.URL+"/pdf/watermark", body, ct, nil)
			out, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("degrees %s: expected 200 OK, got %d: %s", deg, resp.StatusCode, out)
			}
			assertWatermarked(t, out)
		}
	})

	t.Run("unsupported uploaded image", func(t *testing.T) {
		body, ct := multipartBody(t, raw, []byte("GIF89a......"), nil)
		resp := post(t, server.URL+"/pdf/watermark", body, ct, nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("inline image", func(t *testing.T) {
		dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pdftest.PNG(10, 10))
		body, ct := multipartBody(t, raw, nil, map[string]string{"image": dataURL})
		resp := post(t, server.URL+"/pdf/watermark", body, ct, nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200 OK, got %d", resp.StatusCode)
		}
	})

	t.Run("broken remote image falls back to text", func(t *testing.T) {
		missing := httptest.NewServer(http.NotFoundHandler())
		defer missing.Close()

		body, ct := multipartBody(t, raw, nil, map[string]string{"text": "DRAFT", "image": missing.URL + "/logo.png"})
		resp := post(t, server.URL+"/pdf/watermark", body, ct, nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200 OK, got %d", resp.StatusCode)
		}
	})

	t.Run("broken remote image without text", func(t *testing.T) {
		missing := httptest.NewServer(http.NotFoundHandler())
		defer missing.Close()

		body, ct := multipartBody(t, raw, nil, map[string]string{"image": missing.URL + "/logo.png"})
		resp := post(t, server.URL+"/pdf/watermark", body, ct, nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", resp.StatusCode)
		}
	})
}

func TestMetadataRoundTrip(t *testing.T) {
	server := setupTestServer("")
	defer server.Close()

	raw := pdftest.PDF(pdftest.Options{Info: map[string]string{
		"Title":        "Old",
		"CreationDate": "D:20230615120000",
		"Company":      "Acme Corp",
	}})

	before := readMetadata(t, server.URL, raw)
	if before.Metadata.CreationDate != "2023-06-15T12:00:00.000Z" {
		t.Errorf("Unexpected creation date %q", before.Metadata.CreationDate)
	}
	if before.CustomFields.Company != "Acme Corp" {
		t.Errorf("Unexpected company %q", before.CustomFields.Company)
	}

	body, ct := multipartBody(t, raw, nil, map[string]string{
		"title":        "Report Q1",
		"author":       "Jane Doe",
		"keywords":     "a, b,  c",
		"creationDate": "2024-01-02",
	})
	resp := post(t, server.URL+"/pdf/metadata/set", body, ct, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected 200 OK, got %d: %s", resp.StatusCode, msg)
	}
	if got := resp.Header.Get("Content-Disposition"); got != `attachment; filename="metadata-updated.pdf"` {
		t.Errorf("Unexpected Content-Disposition %q", got)
	}
	out, _ := io.ReadAll(resp.Body)

	after := readMetadata(t, server.URL, out)
	if after.Metadata.Title != "Report Q1" || after.Metadata.Author != "Jane Doe" {
		t.Errorf("Metadata not written: %+v", after.Metadata)
	}
	if after.Metadata.Keywords != "a, b, c" {
		t.Errorf("Unexpected keywords %q", after.Metadata.Keywords)
	}
	if after.Metadata.CreationDate != "2024-01-02T00:00:00.000Z" {
		t.Errorf("Unexpected creation date %q", after.Metadata.CreationDate)
	}
	if after.CustomFields.Company != "Acme Corp" {
		t.Errorf("Custom fields should survive, got %q", after.CustomFields.Company)
	}
}

func TestMetadataSetInvalidDate(t *testing.T) {
	server := setupTestServer("")
	defer server.Close()

	body, ct := multipartBody(t, pdftest.PDF(pdftest.Options{}), nil, map[string]string{"modDate": "whenever"})
	resp := post(t, server.URL+"/pdf/metadata/set", body, ct, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", resp.StatusCode)
	}
}

func TestRequireAPIKeyDisabled(t *testing.T) {
	h := requireAPIKey("")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/pdf/watermark", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", rec.Code)
	}
}
