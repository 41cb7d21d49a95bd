package mazeapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/beka-birhanu/mazegen-api/maze"
	"github.com/beka-birhanu/mazegen-api/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMazeService struct {
	createErr error
	record    *dmn.MazeRecord
}

func (s *stubMazeService) Create(int, int, string, *int64) (*dmn.MazeRecord, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.record, nil
}

func (s *stubMazeService) ByID(uuid.UUID) (*dmn.MazeRecord, error) {
	return s.record, nil
}

func (s *stubMazeService) PNG(context.Context, uuid.UUID) ([]byte, error) {
	return nil, errors.New("not rendered in this test")
}

func postCreate(t *testing.T, svc *stubMazeService) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	controller, err := NewController(svc)
	require.NoError(t, err)

	router := gin.New()
	controller.RegisterProtected(router.Group("/v1"))

	body := `{"width": 4, "height": 4, "algorithm": "dfs"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/mazes/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCreateStatusCodes(t *testing.T) {
	t.Run("input errors come back as 400", func(t *testing.T) {
		inputErrs := []error{
			fmt.Errorf("%w: %q", maze.ErrUnsupportedAlgorithm, "prim"),
			fmt.Errorf("%w: got 0x4", maze.ErrInvalidDimension),
			fmt.Errorf("%w: 600x4 with limit 512", service.ErrDimensionTooLarge),
		}
		for _, err := range inputErrs {
			recorder := postCreate(t, &stubMazeService{createErr: err})
			assert.Equal(t, http.StatusBadRequest, recorder.Code, "error %v", err)
		}
	})

	t.Run("unexpected errors come back as 500", func(t *testing.T) {
		recorder := postCreate(t, &stubMazeService{createErr: errors.New("mongo is down")})
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})

	t.Run("a stored maze comes back as 201", func(t *testing.T) {
		record := &dmn.MazeRecord{ID: uuid.New(), Width: 4, Height: 4, Algorithm: maze.AlgorithmDFS}
		recorder := postCreate(t, &stubMazeService{record: record})
		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), record.ID.String())
	})
}
