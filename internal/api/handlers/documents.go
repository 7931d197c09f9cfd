package handlers

import (
	"net/http"
	"strings"
	"time"

	"transport-management-service/internal/api/dto"
	"transport-management-service/internal/domain"
	"transport-management-service/internal/ports"
	"transport-management-service/internal/services"

	"go.uber.org/zap"
)

// DocumentHandler exposes one entity store over HTTP: list, create, get,
// status change and transition history. Every route requires a staff session
// whose role the policy admits for Resource.
type DocumentHandler[T domain.Document[T], R dto.Draft[T], V any] struct {
	Resource domain.Resource
	Store    *services.Store[T]
	Journal  ports.TransitionJournal
	Policy   domain.AccessPolicy
	Render   func(T, time.Time) V
	Logger   *zap.Logger
	Clock    func() time.Time
}

func (h *DocumentHandler[T, R, V]) List(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, domain.ActionView) {
		return
	}

	q := r.URL.Query()
	docs, err := h.Store.List(r.Context(), q.Get("search"), q.Get("status"))
	if err != nil {
		writeDomainError(w, r, h.Logger, "list "+string(h.Resource), err)
		return
	}

	now := h.now()
	res := dto.ListResponse[V]{Items: make([]V, 0, len(docs)), Count: len(docs)}
	for _, d := range docs {
		res.Items = append(res.Items, h.Render(d, now))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *DocumentHandler[T, R, V]) Create(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, domain.ActionCreate) {
		return
	}

	var req R
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	draft, err := req.ToDocument()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.Store.Create(r.Context(), draft)
	if err != nil {
		writeDomainError(w, r, h.Logger, "create "+string(h.Resource), err)
		return
	}

	writeJSON(w, r, http.StatusCreated, h.envelope(doc))
}

func (h *DocumentHandler[T, R, V]) Get(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, domain.ActionView) {
		return
	}

	doc, err := h.Store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, h.Logger, "get "+string(h.Resource), err)
		return
	}
	writeJSON(w, r, http.StatusOK, h.envelope(doc))
}

func (h *DocumentHandler[T, R, V]) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, domain.ActionChangeStatus) {
		return
	}

	var req dto.StatusChangeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	target := domain.Status(strings.TrimSpace(req.Status))
	if target == "" {
		writeError(w, r, http.StatusBadRequest, "status is required")
		return
	}

	doc, err := h.Store.ChangeStatus(r.Context(), r.PathValue("id"), target)
	if err != nil {
		writeDomainError(w, r, h.Logger, "change "+string(h.Resource)+" status", err)
		return
	}
	writeJSON(w, r, http.StatusOK, h.envelope(doc))
}

func (h *DocumentHandler[T, R, V]) History(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, domain.ActionView) {
		return
	}

	id := r.PathValue("id")
	if _, err := h.Store.Get(r.Context(), id); err != nil {
		writeDomainError(w, r, h.Logger, "history "+string(h.Resource), err)
		return
	}
	if h.Journal == nil {
		writeJSON(w, r, http.StatusOK, dto.NewHistoryResponse(h.Resource, id, nil))
		return
	}

	ts, err := h.Journal.History(r.Context(), h.Resource, id)
	if err != nil {
		writeDomainError(w, r, h.Logger, "history "+string(h.Resource), err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.NewHistoryResponse(h.Resource, id, ts))
}

func (h *DocumentHandler[T, R, V]) authorize(w http.ResponseWriter, r *http.Request, action domain.Action) bool {
	return authorize(w, r, h.Policy, h.Resource, action)
}

func (h *DocumentHandler[T, R, V]) envelope(doc T) dto.DocumentResponse[V] {
	next := h.Store.Lifecycle().Next(doc.DocumentStatus())
	return dto.DocumentResponse[V]{Document: h.Render(doc, h.now()), NextStatuses: next}
}

func (h *DocumentHandler[T, R, V]) now() time.Time {
	if h.Clock == nil {
		return time.Now()
	}
	return h.Clock()
}

// authorize checks the session's role against the policy and writes 401/403 on refusal.
func authorize(w http.ResponseWriter, r *http.Request, p domain.AccessPolicy, res domain.Resource, action domain.Action) bool {
	s, ok := SessionFrom(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return false
	}
	if !p.Can(s.Principal.Role, res, action) {
		writeError(w, r, http.StatusForbidden, "forbidden")
		return false
	}
	return true
}
