// Package handlers provides HTTP handlers for the PDF watermark and metadata API.
//
// This package contains the endpoints that stamp watermarks, read metadata,
// write metadata, and report service health.
//
// Example usage:
//
//	h := handlers.NewAPIHandler(uploadDir, maxUploadSize, resolver, stamper)
//	r := chi.NewRouter()
//	r.Post("/pdf/watermark", h.Watermark)
//
// All handlers are designed to be used with the chi router.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"pdf-metadata-api/internal/images"
	"pdf-metadata-api/internal/logging"
	"pdf-metadata-api/internal/pdf"
	"pdf-metadata-api/internal/workspace"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "Metadata-API"

// Multipart parts above this size are spooled to temporary files.
const maxFormMemory = 32 << 20

type APIHandler struct {
	UploadDir     string
	MaxUploadSize int64
	Images        *images.Resolver
	Stamper       *pdf.Stamper
}

func NewAPIHandler(uploadDir string, maxUploadSize int64, resolver *images.Resolver, stamper *pdf.Stamper) *APIHandler {
	return &APIHandler{
		UploadDir:     uploadDir,
		MaxUploadSize: maxUploadSize,
		Images:        resolver,
		Stamper:       stamper,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writePDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func statusFor(err error) int {
	switch {
	case pdf.IsClientError(err),
		errors.Is(err, images.ErrUnsupportedFormat),
		errors.Is(err, images.ErrUndecodable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logging.Logger().Error("request failed", "path", r.URL.Path, "error", err)
	}
	writeError(w, status, err.Error())
}

// parseUpload parses the multipart body and returns the bytes of the "pdf" part.
func (h *APIHandler) parseUpload(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadSize)
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errFileTooLarge
		}
		return nil, pdf.ErrMissingFile
	}

	file, _, err := r.FormFile("pdf")
	if err != nil {
		return nil, pdf.ErrMissingFile
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, pdf.ErrMissingFile
	}
	return data, nil
}

var errFileTooLarge = errors.New("file too large")

func (h *APIHandler) failUpload(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errFileTooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	}
	fail(w, r, err)
}

// imageSource collects the optional watermark image inputs of a parsed form.
func imageSource(r *http.Request) (images.Source, error) {
	src := images.Source{Field: r.FormValue("image")}
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return src, nil
	}
	if err != nil {
		return src, err
	}
	defer file.Close()

	if src.Upload, err = io.ReadAll(file); err != nil {
		return src, err
	}
	src.UploadType = header.Header.Get("Content-Type")
	return src, nil
}

// Watermark godoc
// @Summary      Watermark a PDF
// @Description  Stamps text and/or an image onto every page and returns the branded PDF
// @Tags         pdf
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        X-API-Key  header    string  false  "Internal API key"
// @Param        pdf        formData  file    true   "PDF file"
// @Param        image      formData  file    false  "Watermark image (PNG/JPEG)"
// @Param        text       formData  string  false  "Watermark text"
// @Param        size       formData  number  false  "Font size in points"
// @Param        color      formData  string  false  "Hex text color"
// @Param        font       formData  string  false  "Standard PDF font name"
// @Param        position   formData  string  false  "top-left, top-right, bottom-left, bottom-right or center"
// @Param        scale      formData  number  false  "Image scale factor"
// @Param        shadow     formData  boolean false  "Draw a text shadow"
// @Param        degrees    formData  number  false  "Rotation in degrees"
// @Param        opacity    formData  number  false  "Opacity between 0 and 1"
// @Success      200  {file}    file              "Watermarked PDF"
// @Failure      400  {object}  errorResponse     "Missing PDF or watermark content"
// @Failure      500  {object}  errorResponse     "Processing failed"
// @Router       /pdf/watermark [post]
func (h *APIHandler) Watermark(w http.ResponseWriter, r *http.Request) {
	raw, err := h.parseUpload(w, r)
	if err != nil {
		h.failUpload(w, r, err)
		return
	}

	src, err := imageSource(r)
	if err != nil {
		fail(w, r, err)
		return
	}

	spec := pdf.WatermarkSpec{
		Text:     strings.TrimSpace(r.FormValue("text")),
		FontName: pdf.ParseFont(r.FormValue("font")),
		FontSize: pdf.ParseFontSize(r.FormValue("size")),
		Color:    r.FormValue("color"),
		Position: pdf.ParsePosition(r.FormValue("position")),
		Scale:    pdf.ParseScale(r.FormValue("scale")),
		Shadow:   pdf.ParseBool(r.FormValue("shadow")),
		Rotation: pdf.ParseRotation(r.FormValue("degrees")),
		Opacity:  pdf.ParseOpacity(r.FormValue("opacity")),
	}
	if strings.TrimSpace(spec.Color) == "" {
		spec.Color = pdf.DefaultColor
	}

	if spec.Text == "" && src.Empty() {
		fail(w, r, pdf.ErrMissingWatermarkContent)
		return
	}
	if spec.Text != "" {
		if _, err := pdf.HexToRGB(spec.Color); err != nil {
			fail(w, r, err)
			return
		}
	}

	img, err := h.Images.Resolve(r.Context(), src)
	if err != nil {
		fail(w, r, err)
		return
	}
	if spec.Text == "" && img == nil {
		fail(w, r, pdf.ErrMissingWatermarkContent)
		return
	}

	ws := workspace.New(h.UploadDir)
	defer ws.Cleanup()

	if img != nil {
		path, err := ws.Save("wm", img.Format.Extension(), img.Data)
		if err != nil {
			fail(w, r, err)
			return
		}
		spec.Image = &pdf.WatermarkImage{Path: path, Width: img.Width, Height: img.Height}
	}

	doc, err := pdf.Load(raw)
	if err != nil {
		fail(w, r, err)
		return
	}
	if err := pdf.ApplyWatermark(doc, spec); err != nil {
		fail(w, r, err)
		return
	}
	if err := h.Stamper.Stamp(doc); err != nil {
		fail(w, r, err)
		return
	}
	out, err := doc.Bytes()
	if err != nil {
		fail(w, r, err)
		return
	}

	writePDF(w, "watermarked.pdf", out)
}

// GetMetadata godoc
// @Summary      Read PDF metadata
// @Description  Returns the document's metadata, custom Info fields and technical facts
// @Tags         metadata
// @Accept       multipart/form-data
// @Produce      json
// @Param        X-API-Key  header    string  false  "Internal API key"
// @Param        pdf        formData  file    true   "PDF file"
// @Success      200  {object}  pdf.MetadataRecord
// @Failure      400  {object}  errorResponse  "No file uploaded"
// @Failure      500  {object}  errorResponse  "Processing failed"
// @Router       /pdf/metadata/get [post]
func (h *APIHandler) GetMetadata(w http.ResponseWriter, r *http.Request) {
	raw, err := h.parseUpload(w, r)
	if err != nil {
		h.failUpload(w, r, err)
		return
	}

	doc, err := pdf.Load(raw)
	if err != nil {
		fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pdf.ReadMetadata(doc, raw))
}

// SetMetadata godoc
// @Summary      Write PDF metadata
// @Description  Overwrites the supplied metadata fields and returns the updated PDF
// @Tags         metadata
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        X-API-Key     header    string  false  "Internal API key"
// @Param        pdf           formData  file    true   "PDF file"
// @Param        title         formData  string  false  "Title"
// @Param        author        formData  string  false  "Author"
// @Param        subject       formData  string  false  "Subject"
// @Param        keywords      formData  string  false  "Comma separated keywords"
// @Param        creator       formData  string  false  "Creator"
// @Param        producer      formData  string  false  "Producer"
// @Param        creationDate  formData  string  false  "Creation date (RFC 3339 or YYYY-MM-DD)"
// @Param        modDate       formData  string  false  "Modification date (RFC 3339 or YYYY-MM-DD)"
// @Success      200  {file}    file           "Updated PDF"
// @Failure      400  {object}  errorResponse  "No file uploaded or invalid date"
// @Failure      500  {object}  errorResponse  "Processing failed"
// @Router       /pdf/metadata/set [post]
func (h *APIHandler) SetMetadata(w http.ResponseWriter, r *http.Request) {
	raw, err := h.parseUpload(w, r)
	if err != nil {
		h.failUpload(w, r, err)
		return
	}

	doc, err := pdf.Load(raw)
	if err != nil {
		fail(w, r, err)
		return
	}

	fields := pdf.MetadataFields{
		Title:        r.FormValue("title"),
		Author:       r.FormValue("author"),
		Subject:      r.FormValue("subject"),
		Keywords:     r.FormValue("keywords"),
		Creator:      r.FormValue("creator"),
		Producer:     r.FormValue("producer"),
		CreationDate: r.FormValue("creationDate"),
		ModDate:      r.FormValue("modDate"),
	}
	if err := pdf.WriteMetadata(doc, fields); err != nil {
		fail(w, r, err)
		return
	}
	out, err := doc.Bytes()
	if err != nil {
		fail(w, r, err)
		return
	}

	writePDF(w, "metadata-updated.pdf", out)
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string  "{ status: OK, service: Metadata-API }"
// @Router       /health [get]
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK", "service": ServiceName})
}
