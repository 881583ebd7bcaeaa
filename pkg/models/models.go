package models

type Profile struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	Role         string `json:"role" db:"role"`
	Company      string `json:"company,omitempty" db:"company"`
	Location     string `json:"location,omitempty" db:"location"`
	HomeAddress  string `json:"home_address,omitempty" db:"home_address"`
	Bio          string `json:"bio,omitempty" db:"bio"`
	WebsiteURL   string `json:"website_url,omitempty" db:"website_url"`
	ProfilePhoto string `json:"profile_photo,omitempty" db:"profile_photo"`
	GithubURL    string `json:"github_url,omitempty" db:"github_url"`
	LinkedinURL  string `json:"linkedin_url,omitempty" db:"linkedin_url"`
	TwitterURL   string `json:"twitter_url,omitempty" db:"twitter_url"`
	TelegramURL  string `json:"telegram_url,omitempty" db:"telegram_url"`
	Hobbies      string `json:"hobbies,omitempty" db:"hobbies"`
	CreatedAt    string `json:"created_at" db:"created_at"`
	UpdatedAt    string `json:"updated_at" db:"updated_at"`
}

// ExpertiseEntry is one (technology, level, years) tuple attached to a
// profile. Level is constrained to 1..10 and years to >= 0 by the store.
type ExpertiseEntry struct {
	ID         int64  `json:"id" db:"id"`
	ProfileID  int64  `json:"profile_id" db:"user_id"`
	Technology string `json:"technology" db:"technology"`
	Level      int    `json:"expertise_level" db:"expertise_level"`
	Years      int    `json:"years_experience" db:"years_experience"`
}

type Admin struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	Name         string `json:"name" db:"name"`
	PasswordHash string `json:"-" db:"password_hash"`
	CreatedAt    string `json:"created_at" db:"created_at"`
}

// Stats is the dashboard aggregate payload. JSON field names match what the
// dashboard consumes.
type Stats struct {
	TotalUsers      int64           `json:"totalUsers"`
	ByMonth         []MonthCount    `json:"byMonth"`
	ByTech          []TechCount     `json:"byTech"`
	ByRole          []RoleCount     `json:"byRole"`
	ByLocation      []LocationCount `json:"byLocation"`
	AvgExperience   float64         `json:"avgExperience"`
	ExpertiseLevels []LevelCount    `json:"expertiseLevels"`
}

type MonthCount struct {
	Month string `json:"m"`
	Count int64  `json:"c"`
}

type TechCount struct {
	Technology string `json:"tech"`
	Count      int64  `json:"c"`
}

type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"c"`
}

type LocationCount struct {
	Location string `json:"location"`
	Count    int64  `json:"c"`
}

type LevelCount struct {
	Level int   `json:"expertise_level"`
	Count int64 `json:"c"`
}
