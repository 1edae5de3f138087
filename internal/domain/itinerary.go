package domain

// ActivityType drives the icon of an itinerary card
type ActivityType string

const (
	ActivityFood      ActivityType = "food"
	ActivityTransport ActivityType = "transport"
	ActivityBuy       ActivityType = "buy"
	ActivityInfo      ActivityType = "info"
	ActivitySpot      ActivityType = "spot"
)

// Activity is one entry of a day plan as authored in the dataset
type Activity struct {
	ID           string       `json:"id"`
	Time         string       `json:"time"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Type         ActivityType `json:"type"`
	OpeningHours string       `json:"openingHours,omitempty"`
	Highlight    bool         `json:"highlight,omitempty"`
	Location     *Coordinates `json:"location,omitempty"`
}

// DayPlan is one day of the trip
type DayPlan struct {
	ID          string        `json:"id"`
	Date        string        `json:"date"`
	Weekday     string        `json:"weekday"`
	Weather     StaticWeather `json:"weather"`
	WeatherTemp string        `json:"weatherTemp"`
	Activities  []Activity    `json:"activities"`
}

// DayOption picks between the alternative plans of the optional day
type DayOption string

const (
	DayOptionA DayOption = "A"
	DayOptionB DayOption = "B"
)

// ParseDayOption defaults to option A for anything but "B"
func ParseDayOption(s string) DayOption {
	if s == string(DayOptionB) {
		return DayOptionB
	}
	return DayOptionA
}

// OptionalDay is a day whose leading activities depend on a chosen option
type OptionalDay struct {
	DayPlan
	OptionLabels map[DayOption]string `json:"optionLabels"`
	OptionA      []Activity           `json:"optionA"`
	OptionB      []Activity           `json:"optionB"`
}

// Resolve builds the concrete day plan for the chosen option: the option's
// activities followed by the common ones
func (d OptionalDay) Resolve(opt DayOption) DayPlan {
	lead := d.OptionA
	if opt == DayOptionB {
		lead = d.OptionB
	}
	plan := d.DayPlan
	plan.Activities = make([]Activity, 0, len(lead)+len(d.DayPlan.Activities))
	plan.Activities = append(plan.Activities, lead...)
	plan.Activities = append(plan.Activities, d.DayPlan.Activities...)
	return plan
}

// Flight is a booked flight leg
type Flight struct {
	Code  string `json:"code"`
	Route string `json:"route"`
	Type  string `json:"type"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// Hotel is a booked stay
type Hotel struct {
	Name  string `json:"name"`
	Area  string `json:"area"`
	Dates string `json:"dates"`
	URL   string `json:"url"`
}

// SavedSpot is a bookmarked place the distance check can target
type SavedSpot struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	URL         string      `json:"url"`
	Location    Coordinates `json:"location"`
	Architect   string      `json:"architect,omitempty"`
}

// Contact is an emergency phone entry
type Contact struct {
	Label string `json:"label"`
	Phone string `json:"phone"`
}

// Phrase is a preset translation card
type Phrase struct {
	Label  string `json:"label"`
	CN     string `json:"cn"`
	JP     string `json:"jp"`
	Romaji string `json:"romaji"`
}

// Trip is the static, read-only itinerary dataset
type Trip struct {
	Title       string      `json:"title"`
	Subtitle    string      `json:"subtitle"`
	DateRange   string      `json:"dateRange"`
	Days        []DayPlan   `json:"days"`
	OptionalDay OptionalDay `json:"optionalDay"`
	Flights     []Flight    `json:"flights"`
	Hotels      []Hotel     `json:"hotels"`
	Spots       []SavedSpot `json:"spots"`
	Contacts    []Contact   `json:"contacts"`
	Phrases     []Phrase    `json:"phrases"`
}

// Plans returns every day in order with the optional day resolved
func (t *Trip) Plans(opt DayOption) []DayPlan {
	plans := make([]DayPlan, 0, len(t.Days)+1)
	plans = append(plans, t.Days...)
	plans = append(plans, t.OptionalDay.Resolve(opt))
	return plans
}

// FindActivity looks an activity up across every day and both options
func (t *Trip) FindActivity(id string) (Activity, bool) {
	for _, d := range t.Days {
		for _, a := range d.Activities {
			if a.ID == id {
				return a, true
			}
		}
	}
	groups := [][]Activity{t.OptionalDay.OptionA, t.OptionalDay.OptionB, t.OptionalDay.Activities}
	for _, g := range groups {
		for _, a := range g {
			if a.ID == id {
				return a, true
			}
		}
	}
	return Activity{}, false
}

// FindSpot looks a saved spot up by id
func (t *Trip) FindSpot(id string) (SavedSpot, bool) {
	for _, s := range t.Spots {
		if s.ID == id {
			return s, true
		}
	}
	return SavedSpot{}, false
}
