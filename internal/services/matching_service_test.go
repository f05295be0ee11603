package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostreel_backend/internal/services/dto"
	"hostreel_backend/pkg/apperrors"
)

func previewService() MatchingService {
	return NewMatchingService(nil, nil, nil, nil, nil, nil, nil, nil)
}

func TestPreviewMatchAssignsBestCandidates(t *testing.T) {
	svc := previewService()

	resp, err := svc.PreviewMatch(&dto.PreviewMatchRequest{
		Candidates: []dto.MatchCandidateInput{
			{ID: "vid-pool", Description: "rooftop pool with sunset views"},
			{ID: "vid-food", Description: "chef plating a signature dish"},
		},
		Slots: []dto.MatchSlotInput{
			{Order: 1, Duration: 3, Description: "rooftop pool sunset"},
			{Order: 2, Duration: 2, Description: "signature dish plating"},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Assignments, 2)

	require.NotNil(t, resp.Assignments[0].VideoID)
	assert.Equal(t, "vid-pool", *resp.Assignments[0].VideoID)
	require.NotNil(t, resp.Assignments[1].VideoID)
	assert.Equal(t, "vid-food", *resp.Assignments[1].VideoID)
	assert.False(t, resp.Statistics.FallbackMode)
}

func TestPreviewMatchEmptyCandidatesFallsBack(t *testing.T) {
	svc := previewService()

	resp, err := svc.PreviewMatch(&dto.PreviewMatchRequest{
		Slots: []dto.MatchSlotInput{{Order: 1, Duration: 3, Description: "anything"}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Assignments, 1)
	assert.Nil(t, resp.Assignments[0].VideoID)
	assert.Zero(t, resp.Assignments[0].Confidence)
	assert.True(t, resp.Statistics.FallbackMode)
}

func TestPreviewMatchRejectsDuplicateSlotOrders(t *testing.T) {
	svc := previewService()

	_, err := svc.PreviewMatch(&dto.PreviewMatchRequest{
		Candidates: []dto.MatchCandidateInput{{ID: "v1", Description: "a"}},
		Slots: []dto.MatchSlotInput{
			{Order: 1, Duration: 3, Description: "a"},
			{Order: 1, Duration: 2, Description: "b"},
		},
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestPreviewMatchRejectsNegativeDuration(t *testing.T) {
	svc := previewService()

	_, err := svc.PreviewMatch(&dto.PreviewMatchRequest{
		Candidates: []dto.MatchCandidateInput{{ID: "v1", Description: "a"}},
		Slots:      []dto.MatchSlotInput{{Order: 1, Duration: -1, Description: "a"}},
	})
	assert.Error(t, err)
}
