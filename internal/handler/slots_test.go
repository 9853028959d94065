package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
)

// MockSlotsService mocks the slots.Service interface
type MockSlotsService struct {
	mock.Mock
}

func (m *MockSlotsService) Spin(ctx context.Context, playerID string, betAmount float64, cheat domain.CheatRequest) (*domain.RoundResult, error) {
	args := m.Called(ctx, playerID, betAmount, cheat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoundResult), args.Error(1)
}

func TestHandleSpinSlots(t *testing.T) {
	InitValidator()

	winResult := &domain.RoundResult{
		PlayerID:  "alice",
		Game:      domain.GameSlots,
		BetAmount: 10,
		Payout:    1000,
		Won:       true,
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockSlotsService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: SpinSlotsRequest{PlayerID: "alice", BetAmount: 10},
			setupMock: func(m *MockSlotsService) {
				m.On("Spin", mock.Anything, "alice", 10.0, domain.CheatRequest{}).Return(winResult, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"payout":1000`,
		},
		{
			name:        "Cheat request forwarded",
			requestBody: SpinSlotsRequest{PlayerID: "alice", BetAmount: 10, CheatActive: true, CheatType: "leverGlitch"},
			setupMock: func(m *MockSlotsService) {
				m.On("Spin", mock.Anything, "alice", 10.0,
					domain.CheatRequest{Active: true, Type: "leverGlitch"}).Return(winResult, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing player ID",
			requestBody:    SpinSlotsRequest{BetAmount: 10},
			setupMock:      func(m *MockSlotsService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:           "Zero bet rejected by validation",
			requestBody:    SpinSlotsRequest{PlayerID: "alice"},
			setupMock:      func(m *MockSlotsService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Service rejects bet",
			requestBody: SpinSlotsRequest{PlayerID: "alice", BetAmount: 99999},
			setupMock: func(m *MockSlotsService) {
				m.On("Spin", mock.Anything, "alice", 99999.0, domain.CheatRequest{}).
					Return(nil, domain.ErrInvalidBetAmount)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgBetAmountError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockSlotsService{}
			tt.setupMock(mockSvc)

			handler := NewSlotsHandler(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/api/v1/slots/spin", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			handler.HandleSpin(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}
