package main

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ak/mealkit/internal/domain/models"
	"github.com/ak/mealkit/internal/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, validateFormat("json"))
	assert.NoError(t, validateFormat("text"))

	err := validateFormat("yaml")
	require.Error(t, err)
	var apiErr *errors.APIError
	require.True(t, stderrors.As(err, &apiErr))
	assert.Equal(t, errors.ErrValidation, apiErr.Code)
}

func TestReadJSONMissingFile(t *testing.T) {
	var plan models.MealPlan
	err := readJSON(filepath.Join(t.TempDir(), "nope.json"), "meal plan", &plan)
	require.Error(t, err)

	var apiErr *errors.APIError
	require.True(t, stderrors.As(err, &apiErr))
	assert.Equal(t, errors.ErrNotFound, apiErr.Code)
}

func TestReadJSONMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	var plan models.MealPlan
	err := readJSON(path, "meal plan", &plan)
	require.Error(t, err)

	var apiErr *errors.APIError
	require.True(t, stderrors.As(err, &apiErr))
	assert.Equal(t, errors.ErrInvalidInput, apiErr.Code)
	assert.NotNil(t, apiErr.Details)
}

func TestReadJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"mp1","name":"Week"}`), 0644))

	var plan models.MealPlan
	require.NoError(t, readJSON(path, "meal plan", &plan))
	assert.Equal(t, "mp1", plan.ID)
	assert.Equal(t, "Week", plan.Name)
}
