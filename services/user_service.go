// services/user_service.go
package services

import (
	"errors"

	"github.com/andrewcsmith09/MacrosAndMore-sub000/config"
	"github.com/andrewcsmith09/MacrosAndMore-sub000/models"
	"github.com/andrewcsmith09/MacrosAndMore-sub000/utils"
)

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user.Disabled {
		return nil, errors.New("user not found or disabled")
	}

	profile := map[string]interface{}{
		"id":             user.ID,
		"email":          user.Email,
		"first_name":     user.FirstName,
		"last_name":      user.LastName,
		"verified":       user.Verified,
		"initial_login":  user.InitialLogin,
		"login_streak":   user.LoginStreak,
		"met_all_num":    user.MetAllNum,
		"met_calorie_num": user.MetCalorieNum,
		"met_cal_mac_num": user.MetCalMacNum,
		"met_fiber_num":  user.MetFiberNum,
		"met_water_num":  user.MetWaterNum,
		"goals":          GoalProfileOf(user),
	}
	if user.LastCheckedDate != nil {
		profile["last_checked_date"] = utils.FormatDate(*user.LastCheckedDate)
	}
	return profile, nil
}

// GoalProfileOf extracts the stored goal profile from the account record.
func GoalProfileOf(user *models.User) GoalProfile {
	return GoalProfile{
		Calories:           user.DailyCalorieGoal,
		Protein:            user.DailyProteinGoal,
		Carbs:              user.DailyCarbsGoal,
		Fat:                user.DailyFatGoal,
		Water:              user.Water,
		TotalSugars:        user.TotalSugars,
		AddedSugars:        user.AddedSugars,
		TransFat:           user.TransFat,
		SaturatedFat:       user.SaturatedFat,
		PolyunsaturatedFat: user.PolyunsaturatedFat,
		MonounsaturatedFat: user.MonounsaturatedFat,
		Cholesterol:        user.Cholesterol,
		Fiber:              user.Fiber,
		Calcium:            user.Calcium,
		Iron:               user.Iron,
		Sodium:             user.Sodium,
		Potassium:          user.Potassium,
		VitaminA:           user.VitaminA,
		VitaminC:           user.VitaminC,
		VitaminD:           user.VitaminD,
	}
}

// ApplyGoalProfile persists a calculated profile onto the account record
// and marks setup complete. Only goal columns are touched; ledger fields
// are a separate update group.
func ApplyGoalProfile(userID uint, p *GoalProfile) error {
	return config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"daily_calorie_goal":  p.Calories,
			"daily_protein_goal":  p.Protein,
			"daily_carbs_goal":    p.Carbs,
			"daily_fat_goal":      p.Fat,
			"water":               p.Water,
			"total_sugars":        p.TotalSugars,
			"added_sugars":        p.AddedSugars,
			"trans_fat":           p.TransFat,
			"saturated_fat":       p.SaturatedFat,
			"polyunsaturated_fat": p.PolyunsaturatedFat,
			"monounsaturated_fat": p.MonounsaturatedFat,
			"cholesterol":         p.Cholesterol,
			"fiber":               p.Fiber,
			"calcium":             p.Calcium,
			"iron":                p.Iron,
			"sodium":              p.Sodium,
			"potassium":           p.Potassium,
			"vitamin_a":           p.VitaminA,
			"vitamin_c":           p.VitaminC,
			"vitamin_d":           p.VitaminD,
			"initial_login":       true,
		}).Error
}

type ManualGoalInput struct {
	DailyCalorieGoal *int     `json:"dailyCalorieGoal"`
	DailyProteinGoal *int     `json:"dailyProteinGoal"`
	DailyCarbsGoal   *int     `json:"dailyCarbsGoal"`
	DailyFatGoal     *int     `json:"dailyFatGoal"`
	Water            *float64 `json:"water"`
	Fiber            *int     `json:"fiber"`
}

// UpdateGoals applies a manual edit from the adjust-goals screen. Only the
// fields present in the request change.
func UpdateGoals(userID uint, in ManualGoalInput) error {
	updates := map[string]interface{}{}
	if in.DailyCalorieGoal != nil {
		updates["daily_calorie_goal"] = *in.DailyCalorieGoal
	}
	if in.DailyProteinGoal != nil {
		updates["daily_protein_goal"] = *in.DailyProteinGoal
	}
	if in.DailyCarbsGoal != nil {
		updates["daily_carbs_goal"] = *in.DailyCarbsGoal
	}
	if in.DailyFatGoal != nil {
		updates["daily_fat_goal"] = *in.DailyFatGoal
	}
	if in.Water != nil {
		updates["water"] = *in.Water
	}
	if in.Fiber != nil {
		updates["fiber"] = *in.Fiber
	}
	if len(updates) == 0 {
		return nil
	}
	return config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(updates).Error
}

type NameInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func UpdateUserName(userID uint, in NameInput) error {
	updates := map[string]interface{}{}
	if in.FirstName != "" {
		updates["first_name"] = in.FirstName
	}
	if in.LastName != "" {
		updates["last_name"] = in.LastName
	}
	if len(updates) == 0 {
		return nil
	}
	return config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(updates).Error
}

func DeleteUser(email string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return err
	}
	user.Disabled = true
	return config.DB.Save(user).Error
}
