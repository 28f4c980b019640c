package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/samajseva/trust-console/modules/member/domain/aggregates/member"
	"github.com/samajseva/trust-console/modules/member/presentation/viewmodels"
	"github.com/samajseva/trust-console/modules/member/services"
	"github.com/samajseva/trust-console/pkg/eventbus"
)

type fakeRepo struct {
	mu      sync.Mutex
	members map[uuid.UUID]member.Member
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{members: map[uuid.UUID]member.Member{}}
}

func (r *fakeRepo) GetPaginated(_ context.Context, _ *member.FindParams) ([]member.Member, int64, error) {
	list, _ := r.List(context.Background())
	return list, int64(len(list)), nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (member.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.members[id]
	if !ok {
		return member.Member{}, member.ErrNotFound
	}
	return m, nil
}

func (r *fakeRepo) List(_ context.Context) ([]member.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]member.Member, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeRepo) Create(_ context.Context, m member.Member) (member.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := member.Hydrate(uuid.New(), member.Fields{Name: m.Name(), Email: m.Email(), Mobile: m.Mobile()}, member.StatusActive, time.Now(), time.Now())
	r.members[created.ID()] = created
	return created, nil
}

func (r *fakeRepo) Update(_ context.Context, m member.Member) (member.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[m.ID()]; !ok {
		return member.Member{}, member.ErrNotFound
	}
	r.members[m.ID()] = m
	return m, nil
}

func newTestRouter(repo member.Repository) *mux.Router {
	log := logrus.New()
	log.SetOutput(io.Discard)
	bus := eventbus.NewEventPublisher(log)

	router := mux.NewRouter()
	NewImportAPIController(services.NewImportService(repo, bus, log, 50, time.Millisecond)).Register(router)
	NewMemberAPIController(services.NewMemberService(repo, bus)).Register(router)
	return router
}

func xlsxUpload(t *testing.T, rows [][]interface{}, extraFields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	sheet, err := f.WriteToBuffer()
	require.NoError(t, err)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", "members.xlsx")
	require.NoError(t, err)
	_, err = part.Write(sheet.Bytes())
	require.NoError(t, err)
	for k, v := range extraFields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestImportAPI_Preview(t *testing.T) {
	repo := newFakeRepo()
	_, err := repo.Create(context.Background(), member.New(member.Fields{Name: "Ramesh Patel", Email: "ramesh@x.com"}))
	require.NoError(t, err)

	router := newTestRouter(repo)
	body, contentType := xlsxUpload(t, [][]interface{}{
		{"Name", "Email"},
		{"Ramesh Patel", "ramesh@x.com"},
		{"Fresh Face", "fresh@x.com"},
		{"", "noname@x.com"},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/members/api/import:preview", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var preview viewmodels.ImportPreview
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&preview))
	require.Equal(t, 3, preview.Summary.TotalRecords)
	require.Equal(t, 1, preview.Summary.DuplicateRecords)
	require.Equal(t, 1, preview.Summary.InvalidRecords)
	require.Equal(t, 1, preview.Summary.RecordsToUpload)
	require.Len(t, preview.Duplicates, 1)
	require.Equal(t, 100, preview.Duplicates[0].Score)
}

func TestImportAPI_ExecuteWithUpdateAction(t *testing.T) {
	repo := newFakeRepo()
	existing, err := repo.Create(context.Background(), member.New(member.Fields{Name: "Ramesh Patel", Email: "ramesh@x.com"}))
	require.NoError(t, err)

	router := newTestRouter(repo)
	body, contentType := xlsxUpload(t, [][]interface{}{
		{"Name", "Email"},
		{"Ramesh K Patel", "ramesh@x.com"},
		{"Fresh Face", "fresh@x.com"},
	}, map[string]string{"default_action": "update"})

	req := httptest.NewRequest(http.MethodPost, "/members/api/import:execute", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var report viewmodels.ImportReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	require.Equal(t, "success", report.Status)
	require.Equal(t, 1, report.Created)
	require.Equal(t, 1, report.Updated)

	updated, err := repo.GetByID(context.Background(), existing.ID())
	require.NoError(t, err)
	require.Equal(t, "Ramesh K Patel", updated.Name())
}

func TestImportAPI_ExecuteAllSkippedRejected(t *testing.T) {
	repo := newFakeRepo()
	_, err := repo.Create(context.Background(), member.New(member.Fields{Name: "Ramesh Patel", Email: "ramesh@x.com"}))
	require.NoError(t, err)

	router := newTestRouter(repo)
	body, contentType := xlsxUpload(t, [][]interface{}{
		{"Name", "Email"},
		{"Ramesh Patel", "ramesh@x.com"},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/members/api/import:execute", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "IMPORT_NOTHING_TO_UPLOAD")
}

func TestImportAPI_Template(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	req := httptest.NewRequest(http.MethodGet, "/members/api/import/template", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Disposition"), "member-import-template.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)
	require.Equal(t, "name", rows[0][0])
}

func TestImportAPI_Suggest(t *testing.T) {
	repo := newFakeRepo()
	_, err := repo.Create(context.Background(), member.New(member.Fields{Name: "Ramesh Patel", Email: "r@x.com"}))
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), member.New(member.Fields{Name: "Anita Shah", Email: "a@x.com"}))
	require.NoError(t, err)

	router := newTestRouter(repo)
	req := httptest.NewRequest(http.MethodGet, "/members/api/import/suggest?q=ramesh", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Items []viewmodels.Member `json:"items"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	require.Len(t, out.Items, 1)
	require.Equal(t, "Ramesh Patel", out.Items[0].Name)
}

func TestImportAPI_MissingFile(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("default_action", "update"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/members/api/import:preview", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "IMPORT_FILE_MISSING")
}
