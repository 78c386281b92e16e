// Package handler содержит HTTP обработчики формы вычисления НОД.
package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/InQaaaaGit/gcd_form.git/internal/models"
	"github.com/InQaaaaGit/gcd_form.git/internal/service"
)

const (
	contentTypeHTML = "text/html"

	// BoringMessage возвращается, если одно из чисел равно нулю
	BoringMessage = "Computing the GCD with zero is boring."
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type Handler struct {
	service service.GcdService
	logger  *zap.Logger
}

func NewHandler(service service.GcdService, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleIndex отдает HTML форму с полями n и m
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "index.html", nil)
}

// HandleGCD обрабатывает отправку формы и возвращает НОД двух чисел
func (h *Handler) HandleGCD(w http.ResponseWriter, r *http.Request) {
	req, err := decodeGcdForm(r)
	if err != nil {
		http.Error(w, "Invalid form data: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Compute(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrZeroOperand) {
			w.Header().Set("Content-Type", contentTypeHTML)
			w.WriteHeader(http.StatusBadRequest)
			if _, writeErr := w.Write([]byte(BoringMessage)); writeErr != nil {
				h.logger.Error("Error writing response", zap.Error(writeErr))
			}
			return
		}
		h.logger.Error("Error computing GCD", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, "result.html", result)
}

// HandlePing отвечает на проверку доступности сервиса
func (h *Handler) HandlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		h.logger.Error("Error writing response", zap.Error(err))
	}
}

// render выполняет шаблон в буфер, чтобы при ошибке не отдать клиенту половину страницы
func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("Error rendering template", zap.String("template", name), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("Error writing response", zap.Error(err))
	}
}

// decodeGcdForm разбирает тело формы в GcdRequest
func decodeGcdForm(r *http.Request) (models.GcdRequest, error) {
	if err := r.ParseForm(); err != nil {
		return models.GcdRequest{}, errors.Wrap(err, "parsing form")
	}

	n, err := parseUintField(r.PostForm, "n")
	if err != nil {
		return models.GcdRequest{}, err
	}
	m, err := parseUintField(r.PostForm, "m")
	if err != nil {
		return models.GcdRequest{}, err
	}

	return models.GcdRequest{N: n, M: m}, nil
}

func parseUintField(form url.Values, name string) (uint64, error) {
	if !form.Has(name) {
		return 0, errors.Newf("missing field `%s`", name)
	}
	v, err := strconv.ParseUint(form.Get(name), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "field `%s`", name)
	}
	return v, nil
}
