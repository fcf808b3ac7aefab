package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	it, err := NewItem(1, "How do I get a scholarship?", "Apply at the dean's office.", "scholarship,stipend", nil)

	require.NoError(t, err)
	assert.True(t, it.IsActive())
	assert.False(t, it.IsPinned())
	assert.Zero(t, it.ViewCount())
}

func TestNewItem_Validation(t *testing.T) {
	_, err := NewItem(0, "question", "answer", "", nil)
	assert.Error(t, err)

	_, err = NewItem(1, "", "answer", "", nil)
	assert.Error(t, err)

	_, err = NewItem(1, "question", "", "", nil)
	assert.Error(t, err)
}

func TestItem_SearchText(t *testing.T) {
	it, err := NewItem(1, "How do I get a scholarship?", "answer", "scholarship,stipend,payment", nil)
	require.NoError(t, err)
	assert.Equal(t, "How do I get a scholarship? scholarship,stipend,payment", it.SearchText())

	plain, err := NewItem(1, "Where is the library?", "answer", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Where is the library?", plain.SearchText())
}

func TestItem_Rate(t *testing.T) {
	it, err := NewItem(1, "question text", "answer", "", nil)
	require.NoError(t, err)

	it.Rate(true, false)
	assert.Equal(t, int64(1), it.HelpfulCount())
	assert.Equal(t, int64(0), it.NotHelpfulCount())

	// Changing the vote reverses the previous one.
	it.Rate(false, true)
	assert.Equal(t, int64(0), it.HelpfulCount())
	assert.Equal(t, int64(1), it.NotHelpfulCount())

	it.Rate(true, true)
	assert.Equal(t, int64(1), it.HelpfulCount())
	assert.Equal(t, int64(0), it.NotHelpfulCount())
}

func TestCategory_DisplayTitle(t *testing.T) {
	c, err := NewCategory("Scholarships", "scholarships", "", "💰", 1)
	require.NoError(t, err)
	assert.Equal(t, "💰 Scholarships", c.DisplayTitle())

	plain, err := NewCategory("Documents", "documents", "", "", 2)
	require.NoError(t, err)
	assert.Equal(t, "Documents", plain.DisplayTitle())
}
