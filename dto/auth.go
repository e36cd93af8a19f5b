package dto

type RegisterTouristInput struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=6"`
	Phone       string   `json:"phone"`
	Nationality string   `json:"nationality"`
	Preferences []string `json:"preferences"`
}

type RegisterGuideInput struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=6"`
	Phone       string   `json:"phone"`
	Bio         string   `json:"bio"`
	Location    string   `json:"location"`
	Languages   []string `json:"languages"`
	Specialties []string `json:"specialties"`
	HourlyRate  string   `json:"hourlyRate"`
	DailyRate   string   `json:"dailyRate"`
	Experience  string   `json:"experience"`
	Highlights  []string `json:"highlights"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type GoogleAuthInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UpdateProfileInput covers the mutable profile fields. Email, role and
// password are never updated through this path.
type UpdateProfileInput struct {
	Name         *string   `json:"name"`
	Phone        *string   `json:"phone"`
	Avatar       *string   `json:"avatar"`
	Nationality  *string   `json:"nationality"`
	Preferences  *[]string `json:"preferences"`
	Bio          *string   `json:"bio"`
	Location     *string   `json:"location"`
	Languages    *[]string `json:"languages"`
	Specialties  *[]string `json:"specialties"`
	HourlyRate   *string   `json:"hourlyRate"`
	DailyRate    *string   `json:"dailyRate"`
	Experience   *string   `json:"experience"`
	Highlights   *[]string `json:"highlights"`
	Availability *string   `json:"availability"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}
