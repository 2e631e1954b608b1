package prediction

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"github.com/kjsvbshk/Tesis-sub000/prediction/business/forecast"
	"github.com/kjsvbshk/Tesis-sub000/prediction/mocks/business/forecast_business"
	"github.com/kjsvbshk/Tesis-sub000/prediction/model"
)

func TestRefreshOddsEndpoint(t *testing.T) {
	syncAsync(t)

	testCases := []struct {
		name           string
		request        *RefreshOddsRequest
		businessResult *forecast.RefreshResult
		businessErr    error
		expectedError  string
	}{
		{
			name: "successful_refresh",
			request: &RefreshOddsRequest{
				Providers: []string{"odds-api", "football-data"},
			},
			businessResult: &forecast.RefreshResult{
				RequestID: 50,
				Refreshed: []*model.ProviderResult{
					{Provider: "odds-api", Body: json.RawMessage(`{"odds":1.5}`)},
					{Provider: "football-data", Body: json.RawMessage(`{"odds":1.6}`)},
				},
			},
		},
		{
			name: "partial_refresh_still_succeeds",
			request: &RefreshOddsRequest{
				Providers: []string{"odds-api", "football-data"},
			},
			businessResult: &forecast.RefreshResult{
				RequestID: 51,
				Refreshed: []*model.ProviderResult{
					{Provider: "odds-api", Body: json.RawMessage(`{"odds":1.5}`)},
				},
				Failed: []model.ProviderFailure{
					{Provider: "football-data", Error: "circuit breaker is open"},
				},
			},
		},
		{
			name: "business_failure",
			request: &RefreshOddsRequest{
				Providers:  []string{"odds-api"},
				RequireAll: true,
			},
			businessErr:   errors.New("1 provider(s) failed in fan-out"),
			expectedError: "failed in fan-out",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBusiness := forecast_business.NewMockBusiness(ctrl)
			mockTemporal := mocks.NewClient(t)
			service := &Service{business: mockBusiness, temporal: mockTemporal}

			mockBusiness.EXPECT().
				RefreshOdds(gomock.Any(), forecast.RefreshOddsParams{
					Providers:  tc.request.Providers,
					RequireAll: tc.request.RequireAll,
				}).
				Return(tc.businessResult, tc.businessErr).
				Times(1)

			if tc.businessErr == nil {
				mockTemporal.On("SignalWorkflow",
					mock.Anything, outboxWorkflowID, "", mock.Anything, mock.Anything,
				).Return(nil).Times(1)
			}

			response, err := service.RefreshOdds(context.Background(), tc.request)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.businessResult.RequestID, response.Result.RequestID)
			assert.Len(t, response.Result.Refreshed, len(tc.businessResult.Refreshed))
			assert.Len(t, response.Result.Failed, len(tc.businessResult.Failed))
			mockTemporal.AssertExpectations(t)
		})
	}
}

func TestRefreshOddsRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		request       *RefreshOddsRequest
		expectedError string
	}{
		{
			name:    "valid_request",
			request: &RefreshOddsRequest{Providers: []string{"odds-api"}},
		},
		{
			name:          "missing_providers",
			request:       &RefreshOddsRequest{},
			expectedError: "required",
		},
		{
			name:          "empty_providers",
			request:       &RefreshOddsRequest{Providers: []string{}},
			expectedError: "min",
		},
		{
			name:          "blank_provider_entry",
			request:       &RefreshOddsRequest{Providers: []string{"odds-api", ""}},
			expectedError: "required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
