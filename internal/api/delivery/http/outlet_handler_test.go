package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang-news-aggregator/internal/api/dto"
	"golang-news-aggregator/internal/entity"
	"golang-news-aggregator/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return log
}

type fakeOutletService struct {
	outlets map[uint]*entity.NewsOutlet
	nextID  uint
}

func newFakeOutletService() *fakeOutletService {
	return &fakeOutletService{outlets: make(map[uint]*entity.NewsOutlet), nextID: 1}
}

func (f *fakeOutletService) Create(ctx context.Context, req *dto.OutletRequest) (*entity.NewsOutlet, error) {
	outlet := &entity.NewsOutlet{ID: f.nextID, Name: req.Name, URL: req.URL, Icon: req.Icon}
	f.outlets[f.nextID] = outlet
	f.nextID++
	return outlet, nil
}

func (f *fakeOutletService) GetAll(ctx context.Context) ([]entity.NewsOutlet, error) {
	var all []entity.NewsOutlet
	for _, o := range f.outlets {
		all = append(all, *o)
	}
	return all, nil
}

func (f *fakeOutletService) GetByID(ctx context.Context, id uint) (*entity.NewsOutlet, error) {
	outlet, ok := f.outlets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return outlet, nil
}

func (f *fakeOutletService) Update(ctx context.Context, id uint, req *dto.OutletRequest) (*entity.NewsOutlet, error) {
	outlet, ok := f.outlets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	outlet.Name = req.Name
	outlet.URL = req.URL
	outlet.Icon = req.Icon
	return outlet, nil
}

func (f *fakeOutletService) Delete(ctx context.Context, id uint) error {
	if _, ok := f.outlets[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.outlets, id)
	return nil
}

func setupOutletServer(t *testing.T) (*echo.Echo, *fakeOutletService) {
	t.Helper()
	e := echo.New()
	svc := newFakeOutletService()
	h := NewOutletHandler(svc, newTestLogger(t))
	h.RegisterRoutes(e.Group("/outlets"))
	return e, svc
}

func TestOutletHandler_Create(t *testing.T) {
	e, svc := setupOutletServer(t)

	req := httptest.NewRequest(http.MethodPost, "/outlets", strings.NewReader(`{"name":"CNN","url":"https://www.cnn.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created entity.NewsOutlet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "CNN", created.Name)
	assert.Len(t, svc.outlets, 1)
}

func TestOutletHandler_GetByID(t *testing.T) {
	e, svc := setupOutletServer(t)
	outlet, err := svc.Create(context.Background(), &dto.OutletRequest{Name: "CNN"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/outlets/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got entity.NewsOutlet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, outlet.ID, got.ID)
}

func TestOutletHandler_GetByID_NotFound(t *testing.T) {
	e, _ := setupOutletServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/outlets/999", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOutletHandler_GetByID_BadID(t *testing.T) {
	e, _ := setupOutletServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/outlets/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOutletHandler_Update(t *testing.T) {
	e, svc := setupOutletServer(t)
	_, err := svc.Create(context.Background(), &dto.OutletRequest{Name: "CNN"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/outlets/1", strings.NewReader(`{"name":"CNN International"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CNN International", svc.outlets[1].Name)
}

func TestOutletHandler_Delete(t *testing.T) {
	e, svc := setupOutletServer(t)
	_, err := svc.Create(context.Background(), &dto.OutletRequest{Name: "CNN"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/outlets/1", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, svc.outlets)
}
