package constants

const (
	AppName           = "mealtrack"
	DefaultConfigPath = "~/.config/mealtrack/mealtrack.json"
	Version           = "v0.3.0"

	// DateFormat is the standard calendar-day key format used throughout the
	// application and as the journal storage key (YYYY-MM-DD).
	DateFormat = "2006-01-02"

	// DisplayDateFormat is the long form used for on-screen date headers,
	// e.g. "Tuesday, January 6, 2026". Never used as a storage key.
	DisplayDateFormat = "Monday, January 2, 2006"

	// Chart label formats per statistics period.
	WeekLabelFormat  = "Mon"
	MonthLabelFormat = "Jan 2"
	YearLabelFormat  = "Jan"

	// UnknownMealName is the display fallback when an upstream record
	// carries no name.
	UnknownMealName = "Unknown Meal"
)

// Default user settings, matching first-run behavior.
const (
	DefaultUserAge      = 30
	DefaultUserGender   = "male"
	DefaultGoalCalories = 2000
	DefaultGoalProtein  = 150
	DefaultGoalCarbs    = 200
	DefaultGoalFat      = 65
)
