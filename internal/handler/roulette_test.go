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
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/roulette"
)

// MockRouletteService mocks the roulette.Service interface
type MockRouletteService struct {
	mock.Mock
}

func (m *MockRouletteService) Spin(ctx context.Context, req roulette.SpinRequest) (*domain.RoundResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoundResult), args.Error(1)
}

func TestHandleSpinRoulette(t *testing.T) {
	InitValidator()

	redWin := &domain.RoundResult{
		PlayerID:  "carol",
		Game:      domain.GameRoulette,
		BetAmount: 10,
		Payout:    20,
		Won:       true,
		Roulette:  &domain.RouletteOutcome{Number: 32, Color: "red"},
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockRouletteService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Simple color bet",
			requestBody: SpinRouletteRequest{PlayerID: "carol", BetAmount: 10, BetType: "red"},
			setupMock: func(m *MockRouletteService) {
				m.On("Spin", mock.Anything, roulette.SpinRequest{
					PlayerID: "carol", BetAmount: 10, BetType: "red",
				}).Return(redWin, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"color":"red"`,
		},
		{
			name: "Multi-bet map",
			requestBody: SpinRouletteRequest{
				PlayerID: "carol",
				Bets: map[string]roulette.Bet{
					"lucky": {Type: "straight", Value: 17, Amount: 5},
				},
			},
			setupMock: func(m *MockRouletteService) {
				m.On("Spin", mock.Anything, mock.MatchedBy(func(req roulette.SpinRequest) bool {
					return req.PlayerID == "carol" && len(req.Bets) == 1
				})).Return(redWin, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing player ID",
			requestBody:    SpinRouletteRequest{BetAmount: 10},
			setupMock:      func(m *MockRouletteService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:        "No stake at all",
			requestBody: SpinRouletteRequest{PlayerID: "carol"},
			setupMock: func(m *MockRouletteService) {
				m.On("Spin", mock.Anything, mock.Anything).
					Return(nil, domain.ErrInvalidBetAmount)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgBetAmountError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockRouletteService{}
			tt.setupMock(mockSvc)

			handler := NewRouletteHandler(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/api/v1/roulette/spin", bytes.NewBuffer(body))
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
