package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/cantord3/info465teamproject/internal/models"
)

func TestSearchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		target        string
		expectedQuery string
		mockSetup     func(m *MockCourseSearcher)
		expectedCode  int
		expectedBody  SearchResponse
		expectError   bool
	}{
		{
			name:          "matches",
			target:        "/courses?query=cs",
			expectedQuery: "cs",
			mockSetup: func(m *MockCourseSearcher) {
				m.EXPECT().
					Search(gomock.Any(), "cs").
					Return([]models.CourseDB{
						{CourseID: "CS101", Name: "Intro to Computer Science", Seats: 30, Active: true},
						{CourseID: "CS201", Name: "Data Structures", Seats: 25, Active: true},
					}, nil)
			},
			expectedCode: 200,
			expectedBody: SearchResponse{Courses: []CourseResult{
				{CourseID: "CS101", Name: "Intro to Computer Science", Seats: 30},
				{CourseID: "CS201", Name: "Data Structures", Seats: 25},
			}},
		},
		{
			name:          "empty query returns all",
			target:        "/courses",
			expectedQuery: "",
			mockSetup: func(m *MockCourseSearcher) {
				m.EXPECT().
					Search(gomock.Any(), "").
					Return([]models.CourseDB{
						{CourseID: "HIST210", Name: "World History", Seats: 35, Active: true},
					}, nil)
			},
			expectedCode: 200,
			expectedBody: SearchResponse{Courses: []CourseResult{
				{CourseID: "HIST210", Name: "World History", Seats: 35},
			}},
		},
		{
			name:          "no matches",
			target:        "/courses?query=zzz",
			expectedQuery: "zzz",
			mockSetup: func(m *MockCourseSearcher) {
				m.EXPECT().
					Search(gomock.Any(), "zzz").
					Return(nil, nil)
			},
			expectedCode: 200,
			expectedBody: SearchResponse{Courses: []CourseResult{}},
		},
		{
			name:          "internal server error",
			target:        "/courses?query=cs",
			expectedQuery: "cs",
			mockSetup: func(m *MockCourseSearcher) {
				m.EXPECT().
					Search(gomock.Any(), "cs").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCourseSearcher(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewSearchHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectError {
				var resp SearchErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "Internal server error", resp.Error)
				return
			}

			var resp SearchResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
