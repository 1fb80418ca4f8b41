package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/repair-workshop/internal/model"
	"github.com/you-humble/repair-workshop/internal/service/mocks"
)

func TestServiceUpdate(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		input  model.WorkshopSettings
		setup  func(repo *mocks.MockSettingsRepository)
		assert func(t *testing.T, s *model.WorkshopSettings, err error)
	}

	company := gofakeit.Company()

	tests := []testCase{
		{
			name:  "validation error: empty name",
			input: model.WorkshopSettings{Name: "  ", Phone: gofakeit.Phone()},
			assert: func(t *testing.T, s *model.WorkshopSettings, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, s)
			},
		},
		{
			name:  "repository error",
			input: model.WorkshopSettings{Name: company},
			setup: func(repo *mocks.MockSettingsRepository) {
				repo.On("Update", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
			},
			assert: func(t *testing.T, s *model.WorkshopSettings, err error) {
				assert.ErrorContains(t, err, "settings.service.Update")
			},
		},
		{
			name: "success: fields trimmed",
			input: model.WorkshopSettings{
				Name:            " " + company + " ",
				Address:         " Main st. 1 ",
				ThankYouMessage: "Thanks!\n",
			},
			setup: func(repo *mocks.MockSettingsRepository) {
				repo.On("Update", mock.Anything, mock.MatchedBy(func(s *model.WorkshopSettings) bool {
					return s.Name == company && s.Address == "Main st. 1"
				})).Return(nil).Once()
			},
			assert: func(t *testing.T, s *model.WorkshopSettings, err error) {
				require.NoError(t, err)
				assert.Equal(t, company, s.Name)
				assert.Equal(t, "Thanks!", s.ThankYouMessage)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewMockSettingsRepository(t)
			if tt.setup != nil {
				tt.setup(repo)
			}

			s, err := NewSettingsService(repo, time.Second, time.Second).Update(context.Background(), tt.input)
			tt.assert(t, s, err)
		})
	}
}

func TestServiceSettings(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockSettingsRepository(t)
	want := &model.WorkshopSettings{Name: gofakeit.Company()}
	repo.On("Settings", mock.Anything).Return(want, nil).Once()

	got, err := NewSettingsService(repo, time.Second, time.Second).Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
