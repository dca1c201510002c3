package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), "category %q", c)
	}

	assert.False(t, Category("Concert").Valid())
	assert.False(t, Category("").Valid())
}

func TestEventValidate(t *testing.T) {
	event := Event{
		Title:    "Valid Event",
		Category: CategorySeminar,
		Capacity: 10,
		Price:    0,
	}
	assert.NoError(t, event.Validate())

	missingTitle := event
	missingTitle.Title = ""
	assert.Error(t, missingTitle.Validate())

	badCategory := event
	badCategory.Category = "Concert"
	assert.Error(t, badCategory.Validate())

	negativeCapacity := event
	negativeCapacity.Capacity = -1
	assert.Error(t, negativeCapacity.Validate())

	negativePrice := event
	negativePrice.Price = -100
	assert.Error(t, negativePrice.Validate())
}
