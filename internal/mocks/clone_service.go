package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/hzaben/mufradat-api/internal/service"
)

// MockCloneService implements service.CloneService for handler tests.
type MockCloneService struct {
	// Function fields for customizable behavior
	ListTemplatesFn func(ctx context.Context) ([]service.TemplateSummary, error)
	CloneDefaultsFn func(ctx context.Context, userID uuid.UUID) (bool, error)
	CloneTemplateFn func(ctx context.Context, userID, templateDeckID uuid.UUID) (*service.CloneResult, error)

	// Fixed fields for simple cases
	Summaries []service.TemplateSummary
	Cloned    bool
	Result    *service.CloneResult
	Err       error
}

// Ensure MockCloneService implements service.CloneService
var _ service.CloneService = (*MockCloneService)(nil)

// ListTemplates implements the CloneService interface.
func (m *MockCloneService) ListTemplates(ctx context.Context) ([]service.TemplateSummary, error) {
	if m.ListTemplatesFn != nil {
		return m.ListTemplatesFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Summaries, nil
}

// CloneDefaults implements the CloneService interface.
func (m *MockCloneService) CloneDefaults(ctx context.Context, userID uuid.UUID) (bool, error) {
	if m.CloneDefaultsFn != nil {
		return m.CloneDefaultsFn(ctx, userID)
	}
	return m.Cloned, m.Err
}

// CloneTemplate implements the CloneService interface.
func (m *MockCloneService) CloneTemplate(ctx context.Context, userID, templateDeckID uuid.UUID) (*service.CloneResult, error) {
	if m.CloneTemplateFn != nil {
		return m.CloneTemplateFn(ctx, userID, templateDeckID)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}
