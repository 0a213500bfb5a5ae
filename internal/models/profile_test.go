package models_test

import (
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestProfileSeedsDefaultCategories() {
	profile := suite.createTestProfile(models.Profile{DisplayName: "Jane"})

	var categories []models.Category
	require.Nil(suite.T(), models.DB.Where(&models.Category{OwnerID: profile.ID}).Order("created_at ASC, rowid ASC").Find(&categories).Error)
	require.Len(suite.T(), categories, len(models.DefaultCategories))

	for i, c := range categories {
		assert.Equal(suite.T(), models.DefaultCategories[i].Name, c.Name)
		assert.Equal(suite.T(), models.DefaultCategories[i].Color, c.Color)
		assert.Equal(suite.T(), models.DefaultCategories[i].Icon, c.Icon)
	}

	assert.Equal(suite.T(), "Other", categories[len(categories)-1].Name)
	assert.Equal(suite.T(), models.DefaultColor, categories[len(categories)-1].Color)
}

func (suite *TestSuiteStandard) TestProfileEmailUnique() {
	_ = suite.createTestProfile(models.Profile{Email: "jane@example.com"})

	err := models.DB.Create(&models.Profile{Email: "  JANE@example.com "}).Error
	assert.ErrorIs(suite.T(), err, models.ErrEmailInUse)
}

func (suite *TestSuiteStandard) TestProfileEmailEmpty() {
	err := models.DB.Create(&models.Profile{Email: " "}).Error
	assert.ErrorIs(suite.T(), err, models.ErrEmailEmpty)
}

func (suite *TestSuiteStandard) TestProfileTrimWhitespace() {
	profile := suite.createTestProfile(models.Profile{Email: " Jane@Example.com\t", DisplayName: "  Jane "})

	assert.Equal(suite.T(), "jane@example.com", profile.Email)
	assert.Equal(suite.T(), "Jane", profile.DisplayName)
}
