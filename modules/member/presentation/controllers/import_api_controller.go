package controllers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/samajseva/trust-console/modules/member/importer"
	"github.com/samajseva/trust-console/modules/member/presentation/mappers"
	"github.com/samajseva/trust-console/modules/member/presentation/viewmodels"
	"github.com/samajseva/trust-console/modules/member/services"
	"github.com/samajseva/trust-console/pkg/application"
	"github.com/samajseva/trust-console/pkg/configuration"
)

type ImportAPIController struct {
	imports  *services.ImportService
	basePath string
}

func NewImportAPIController(imports *services.ImportService) application.Controller {
	return &ImportAPIController{
		imports:  imports,
		basePath: "/members/api/import",
	}
}

func (c *ImportAPIController) Key() string {
	return c.basePath
}

func (c *ImportAPIController) Register(r *mux.Router) {
	router := r.PathPrefix("/members/api").Subrouter()
	router.HandleFunc("/import:preview", c.Preview).Methods(http.MethodPost)
	router.HandleFunc("/import:execute", c.Execute).Methods(http.MethodPost)
	router.HandleFunc("/import/template", c.Template).Methods(http.MethodGet)
	router.HandleFunc("/import/suggest", c.Suggest).Methods(http.MethodGet)
}

func (c *ImportAPIController) Preview(w http.ResponseWriter, r *http.Request) {
	file, ok := c.uploadedFile(w, r)
	if !ok {
		return
	}
	defer func() { _ = file.Close() }()

	plan, err := c.imports.Preview(r.Context(), file)
	if err != nil {
		c.writePreviewError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.PlanToPreview(plan))
}

func (c *ImportAPIController) Execute(w http.ResponseWriter, r *http.Request) {
	file, ok := c.uploadedFile(w, r)
	if !ok {
		return
	}
	defer func() { _ = file.Close() }()

	plan, err := c.imports.Preview(r.Context(), file)
	if err != nil {
		c.writePreviewError(w, r, err)
		return
	}
	if !c.applyActions(w, r, plan) {
		return
	}

	report, err := c.imports.Execute(r.Context(), plan)
	if err != nil {
		switch {
		case errors.Is(err, importer.ErrNothingToUpload):
			writeAPIError(w, r, http.StatusUnprocessableEntity, "IMPORT_NOTHING_TO_UPLOAD", err.Error())
		case errors.Is(err, services.ErrImportInProgress):
			writeAPIError(w, r, http.StatusConflict, "IMPORT_IN_PROGRESS", err.Error())
		default:
			writeAPIError(w, r, http.StatusInternalServerError, "IMPORT_INTERNAL", "internal error")
		}
		return
	}
	writeJSON(w, http.StatusOK, mappers.ReportToViewModel(report))
}

func (c *ImportAPIController) Template(w http.ResponseWriter, r *http.Request) {
	data, err := c.imports.Template()
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "IMPORT_INTERNAL", "internal error")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="member-import-template.xlsx"`)
	_, _ = w.Write(data)
}

func (c *ImportAPIController) Suggest(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	limit := 10
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= configuration.Use().MaxPageSize {
			limit = parsed
		}
	}

	matches, err := c.imports.Suggest(r.Context(), q, limit)
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "IMPORT_INTERNAL", "internal error")
		return
	}

	out := make([]viewmodels.Member, 0, len(matches))
	for _, m := range matches {
		out = append(out, mappers.MemberToViewModel(m))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

func (c *ImportAPIController) uploadedFile(w http.ResponseWriter, r *http.Request) (multipart.File, bool) {
	if err := r.ParseMultipartForm(configuration.Use().MaxUploadSize); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "IMPORT_INVALID_UPLOAD", "invalid multipart upload")
		return nil, false
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "IMPORT_FILE_MISSING", `multipart field "file" is required`)
		return nil, false
	}
	return file, true
}

// applyActions reads the reviewed reconciliation choices from the form:
// default_action applies to every duplicate, actions is a JSON object keyed by
// spreadsheet row number.
func (c *ImportAPIController) applyActions(w http.ResponseWriter, r *http.Request, plan *importer.Plan) bool {
	if v := strings.TrimSpace(r.FormValue("default_action")); v != "" {
		a, ok := parseAction(v)
		if !ok {
			writeAPIError(w, r, http.StatusBadRequest, "IMPORT_INVALID_ACTION", "default_action must be skip, update or create")
			return false
		}
		plan.SetDefaultAction(a)
	}

	if v := strings.TrimSpace(r.FormValue("actions")); v != "" {
		var overrides map[string]string
		if err := json.Unmarshal([]byte(v), &overrides); err != nil {
			writeAPIError(w, r, http.StatusBadRequest, "IMPORT_INVALID_ACTIONS", "actions must be a JSON object of row to action")
			return false
		}
		for rowKey, actionValue := range overrides {
			rowNum, err := strconv.Atoi(rowKey)
			if err != nil {
				writeAPIError(w, r, http.StatusBadRequest, "IMPORT_INVALID_ACTIONS", "action keys must be row numbers")
				return false
			}
			a, ok := parseAction(actionValue)
			if !ok {
				writeAPIError(w, r, http.StatusBadRequest, "IMPORT_INVALID_ACTION", "actions must be skip, update or create")
				return false
			}
			plan.SetAction(rowNum, a)
		}
	}
	return true
}

func (c *ImportAPIController) writePreviewError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, importer.ErrEmptySpreadsheet) {
		writeAPIError(w, r, http.StatusUnprocessableEntity, "IMPORT_EMPTY_FILE", err.Error())
		return
	}
	writeAPIError(w, r, http.StatusBadRequest, "IMPORT_UNREADABLE_FILE", "could not read spreadsheet")
}

func parseAction(v string) (importer.Action, bool) {
	switch importer.Action(strings.ToLower(strings.TrimSpace(v))) {
	case importer.ActionSkip:
		return importer.ActionSkip, true
	case importer.ActionUpdate:
		return importer.ActionUpdate, true
	case importer.ActionCreate:
		return importer.ActionCreate, true
	default:
		return "", false
	}
}
