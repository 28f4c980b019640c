package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/samajseva/trust-console/modules/member/domain/aggregates/member"
	"github.com/samajseva/trust-console/modules/member/presentation/mappers"
	"github.com/samajseva/trust-console/modules/member/presentation/viewmodels"
	"github.com/samajseva/trust-console/modules/member/services"
	"github.com/samajseva/trust-console/pkg/application"
	"github.com/samajseva/trust-console/pkg/configuration"
)

type MemberAPIController struct {
	members  *services.MemberService
	basePath string
}

func NewMemberAPIController(members *services.MemberService) application.Controller {
	return &MemberAPIController{
		members:  members,
		basePath: "/members/api",
	}
}

func (c *MemberAPIController) Key() string {
	return c.basePath
}

func (c *MemberAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/members", c.List).Methods(http.MethodGet)
	router.HandleFunc("/members", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/members/{id}", c.Get).Methods(http.MethodGet)
	router.HandleFunc("/members/{id}", c.Update).Methods(http.MethodPut)
}

func (c *MemberAPIController) List(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()

	limit := conf.PageSize
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= conf.MaxPageSize {
			limit = parsed
		}
	}
	offset := 0
	if v := strings.TrimSpace(r.URL.Query().Get("offset")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))

	items, total, err := c.members.GetPaginated(r.Context(), &member.FindParams{Q: q, Limit: limit, Offset: offset})
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "MEMBER_INTERNAL", "internal error")
		return
	}

	out := make([]viewmodels.Member, 0, len(items))
	for _, m := range items {
		out = append(out, mappers.MemberToViewModel(m))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": out,
		"total": total,
	})
}

func (c *MemberAPIController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "MEMBER_INVALID_ID", "invalid member id")
		return
	}

	m, err := c.members.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, member.ErrNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "MEMBER_NOT_FOUND", "member not found")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "MEMBER_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, mappers.MemberToViewModel(m))
}

func (c *MemberAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var dto member.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "MEMBER_INVALID_JSON", "invalid json")
		return
	}
	if errs, ok := dto.Ok(); !ok {
		writeAPIError(w, r, http.StatusUnprocessableEntity, "MEMBER_VALIDATION_FAILED", firstValidationMessage(errs))
		return
	}

	created, err := c.members.Create(r.Context(), &dto)
	if err != nil {
		if errors.Is(err, member.ErrEmailTaken) {
			writeAPIError(w, r, http.StatusConflict, "MEMBER_EMAIL_CONFLICT", "email already exists")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "MEMBER_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, mappers.MemberToViewModel(created))
}

func (c *MemberAPIController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "MEMBER_INVALID_ID", "invalid member id")
		return
	}

	var dto member.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "MEMBER_INVALID_JSON", "invalid json")
		return
	}
	if errs, ok := dto.Ok(); !ok {
		writeAPIError(w, r, http.StatusUnprocessableEntity, "MEMBER_VALIDATION_FAILED", firstValidationMessage(errs))
		return
	}

	updated, err := c.members.Update(r.Context(), id, &dto)
	if err != nil {
		switch {
		case errors.Is(err, member.ErrNotFound):
			writeAPIError(w, r, http.StatusNotFound, "MEMBER_NOT_FOUND", "member not found")
		case errors.Is(err, member.ErrEmailTaken):
			writeAPIError(w, r, http.StatusConflict, "MEMBER_EMAIL_CONFLICT", "email already exists")
		default:
			writeAPIError(w, r, http.StatusInternalServerError, "MEMBER_INTERNAL", "internal error")
		}
		return
	}
	writeJSON(w, http.StatusOK, mappers.MemberToViewModel(updated))
}

func firstValidationMessage(errs map[string]string) string {
	for _, msg := range errs {
		if strings.TrimSpace(msg) != "" {
			return msg
		}
	}
	return "validation failed"
}
