package models_test

import (
	"github.com/financeflow/backend/internal/models"
	"golang.org/x/exp/slices"
)

func (suite *TestSuiteStandard) TestCreateUserSeedsDefaultCategories() {
	user := suite.createTestUser("ana")

	var categories []models.Category
	suite.Require().Nil(models.DB.Where("user_id = ?", user.ID).Find(&categories).Error)
	suite.Require().Len(categories, len(models.DefaultCategories))

	for _, c := range categories {
		suite.Assert().True(slices.Contains(models.DefaultCategories, c.Name), "unexpected category %s", c.Name)
		suite.Assert().Equal(user.ID, c.UserID)
	}
}

func (suite *TestSuiteStandard) TestUpdateUserDoesNotSeed() {
	user := suite.createTestUser("bruno")

	suite.Require().Nil(models.DB.Model(&user).Select("Email").Updates(models.User{Email: "new@example.com"}).Error)
	suite.Require().Nil(models.DB.Save(&user).Error)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Category{}).Where("user_id = ?", user.ID).Count(&count).Error)
	suite.Assert().Equal(int64(len(models.DefaultCategories)), count)
}

func (suite *TestSuiteStandard) TestSeedingIsPerUser() {
	a := suite.createTestUser("carla")
	b := suite.createTestUser("diego")

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Category{}).Count(&count).Error)
	suite.Assert().Equal(int64(2*len(models.DefaultCategories)), count)

	suite.Require().Nil(models.DB.Model(&models.Category{}).Where("user_id = ?", b.ID).Count(&count).Error)
	suite.Assert().Equal(int64(len(models.DefaultCategories)), count)
	suite.Assert().NotEqual(a.ID, b.ID)
}

func (suite *TestSuiteStandard) TestUsernameUnique() {
	_ = suite.createTestUser("eva")

	user := models.User{Username: "eva"}
	err := models.CreateUser(models.DB, &user)
	suite.Assert().ErrorIs(err, models.ErrUsernameNotUnique)

	// The failed registration must not leave categories behind
	var count int64
	suite.Require().Nil(models.DB.Model(&models.Category{}).Count(&count).Error)
	suite.Assert().Equal(int64(len(models.DefaultCategories)), count)
}

func (suite *TestSuiteStandard) TestUsernameEmpty() {
	user := models.User{Username: "  "}
	suite.Assert().ErrorIs(models.CreateUser(models.DB, &user), models.ErrUsernameEmpty)
}

func (suite *TestSuiteStandard) TestUserDBClosed() {
	suite.CloseDB()

	user := models.User{Username: "closed"}
	suite.Assert().ErrorIs(models.CreateUser(models.DB, &user), models.ErrGeneral)
}
