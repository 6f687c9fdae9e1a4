package shared_test

import (
	"fmt"
	"testing"

	"voyage/shared"
	"voyage/shared/constant"
	"voyage/shared/dto"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		input    string
		expected *bool
	}{
		{input: "", expected: nil},
		{input: "true", expected: boolPtr(true)},
		{input: "0", expected: boolPtr(false)},
		{input: "F", expected: boolPtr(false)},
		{input: "featured", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(0, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(5, 0))
	assert.Equal(t, 1, shared.CalculateTotalPage(10, 10))
	assert.Equal(t, 2, shared.CalculateTotalPage(11, 10))
	assert.Equal(t, 3, shared.CalculateTotalPage(21, 10))
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name      string `db:"name"`
		Capacity  *int   `db:"max_occupancy"`
		Untracked string
		Active    bool `db:"is_active"`
	}

	capacity := 3
	result := shared.TransformFields(update{Name: "Deluxe", Capacity: &capacity, Untracked: "x"}, "admin-1")

	assert.Equal(t, "Deluxe", result["name"])
	assert.Equal(t, &capacity, result["max_occupancy"])
	assert.NotContains(t, result, "is_active")
	assert.NotContains(t, result, "Untracked")
	assert.Equal(t, "admin-1", result[constant.FieldModifiedBy])
	assert.Contains(t, result, constant.FieldModifiedAt)
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("abc", "id", "bookings")
	where, args := filter.GetWhereClause()

	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "abc"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "hotel:get", shared.BuildCacheKey("hotel:get"))
	assert.Equal(t, "hotel:get:42", shared.BuildCacheKey("hotel:get", "42"))
	assert.Equal(t, "limiter:1.1.1.1:curl", shared.BuildCacheKey("limiter", "1.1.1.1", "curl"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: dto.SortDirDesc}
	filterA := shared.FilterByField("status", "pending", "bookings")
	filterB := shared.FilterByField("status", "confirmed", "bookings")

	keyA := shared.BuildCacheKeyWithQuery("booking:gets", params, filterA)

	assert.Equal(t, keyA, shared.BuildCacheKeyWithQuery("booking:gets", params, filterA))
	assert.NotEqual(t, keyA, shared.BuildCacheKeyWithQuery("booking:gets", params, filterB))

	params.Page = 2
	assert.NotEqual(t, keyA, shared.BuildCacheKeyWithQuery("booking:gets", params, filterA))
}

func TestUniqueViolation(t *testing.T) {
	dup := &pq.Error{Code: constant.PqErrorCodeUniqueViolation, Constraint: "bookings_booking_reference_key"}

	constraint, ok := shared.UniqueViolation(fmt.Errorf("insert: %w", dup))
	assert.True(t, ok)
	assert.Equal(t, "bookings_booking_reference_key", constraint)

	_, ok = shared.UniqueViolation(&pq.Error{Code: constant.PqErrorCodeFkViolation})
	assert.False(t, ok)

	_, ok = shared.UniqueViolation(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func boolPtr(b bool) *bool {
	return &b
}
