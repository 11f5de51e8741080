package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"Sekkrit/internal/classify"
	"Sekkrit/internal/detail"
	"Sekkrit/internal/middleware"
)

// MaxDetailBody — лимит тела запроса /api/details/inspect.
const MaxDetailBody = 1 << 20

// DetailHandler декодирует и классифицирует присланные детали. Состояния не хранит.
type DetailHandler struct {
	Logger *zap.SugaredLogger
}

// NewDetailHandler создаёт хендлер деталей
func NewDetailHandler(logger *zap.SugaredLogger) *DetailHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &DetailHandler{Logger: logger}
}

// RowDTO — строка ответа. Value заполняется только у публичных строк.
type RowDTO struct {
	Label       string `json:"label"`
	Sensitivity string `json:"sensitivity"`
	Kind        string `json:"kind"`
	Value       string `json:"value,omitempty"`
	Heading     bool   `json:"heading,omitempty"`
}

type InspectResponse struct {
	Category string   `json:"category"`
	Icon     string   `json:"icon"`
	Rows     []RowDTO `json:"rows"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Ping проверка живости
func (h *DetailHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Inspect декодирует деталь категории ?category= (по умолчанию login) и возвращает строки
// отображения. Значения секретных полей в ответ не попадают.
func (h *DetailHandler) Inspect(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.GetSubjectFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	category := detail.CategoryLogin
	if q := r.URL.Query().Get("category"); q != "" {
		c, err := detail.ParseCategory(q)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid_category", Message: err.Error()})
			return
		}
		category = c
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxDetailBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "too_large", Message: "request body too large"})
			return
		}
		h.Logger.Warnw("Inspect: read body failed", "subject", subject, "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	d, err := detail.DecodeDetail(category, body)
	if err != nil {
		var de *detail.DecodeError
		if !errors.As(err, &de) {
			h.Logger.Errorw("Inspect: decode failed", "subject", subject, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		h.Logger.Infow("Inspect: detail rejected", "subject", subject, "category", category.String(), "error_kind", de.Kind())
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: de.Kind(), Message: de.Error()})
		return
	}

	rows := classify.Rows(d)
	resp := InspectResponse{Category: string(category), Icon: category.Icon(), Rows: make([]RowDTO, 0, len(rows))}
	for _, row := range rows {
		dto := RowDTO{
			Label:       row.Label,
			Sensitivity: row.Sensitivity.String(),
			Kind:        row.Kind.String(),
			Heading:     row.Heading,
		}
		if row.Secret == nil {
			dto.Value = row.Text
		}
		resp.Rows = append(resp.Rows, dto)
	}
	writeJSON(w, http.StatusOK, resp)
}
