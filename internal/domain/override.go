package domain

// MaxActivityImages bounds the attachments kept per activity
const MaxActivityImages = 3

// ActivityOverride holds user edits for one activity. Empty text fields
// mean "use the dataset value".
type ActivityOverride struct {
	Title        string   `json:"title,omitempty"`
	Time         string   `json:"time,omitempty"`
	OpeningHours string   `json:"openingHours,omitempty"`
	Description  string   `json:"description,omitempty"`
	Comment      string   `json:"comment,omitempty"`
	Images       []string `json:"images,omitempty"`
}

// IsZero reports whether the override carries no edits
func (o ActivityOverride) IsZero() bool {
	return o.Title == "" && o.Time == "" && o.OpeningHours == "" &&
		o.Description == "" && o.Comment == "" && len(o.Images) == 0
}

// AddImage appends img and drops the oldest images past MaxActivityImages
func (o *ActivityOverride) AddImage(img string) {
	o.Images = append(o.Images, img)
	if n := len(o.Images); n > MaxActivityImages {
		o.Images = append([]string(nil), o.Images[n-MaxActivityImages:]...)
	}
}

// RemoveImage drops the image at index
func (o *ActivityOverride) RemoveImage(index int) error {
	if index < 0 || index >= len(o.Images) {
		return ErrImageNotFound
	}
	o.Images = append(o.Images[:index:index], o.Images[index+1:]...)
	return nil
}

// OverrideState maps activity id to its override. Keys for activities
// missing from the dataset are kept as they are.
type OverrideState map[string]ActivityOverride

// ActivityEdit is a save of the editable text fields of a card
type ActivityEdit struct {
	Title        string `json:"title"`
	Time         string `json:"time"`
	OpeningHours string `json:"openingHours"`
	Description  string `json:"description"`
}

// ActivityView is an activity with its override merged over the dataset
type ActivityView struct {
	Activity
	Comment string   `json:"comment"`
	Images  []string `json:"images"`
	MapURL  string   `json:"mapUrl,omitempty"`
}

// Merge applies o over the dataset activity
func (o ActivityOverride) Merge(a Activity) ActivityView {
	if o.Title != "" {
		a.Title = o.Title
	}
	if o.Time != "" {
		a.Time = o.Time
	}
	if o.OpeningHours != "" {
		a.OpeningHours = o.OpeningHours
	}
	if o.Description != "" {
		a.Description = o.Description
	}
	images := make([]string, len(o.Images))
	copy(images, o.Images)
	return ActivityView{
		Activity: a,
		Comment:  o.Comment,
		Images:   images,
	}
}

// DayView is a day plan ready for display
type DayView struct {
	Index       int            `json:"index"`
	ID          string         `json:"id"`
	Date        string         `json:"date"`
	Weekday     string         `json:"weekday"`
	Weather     StaticWeather  `json:"weather"`
	WeatherTemp string         `json:"weatherTemp"`
	Live        *DailyForecast `json:"live,omitempty"`
	Option      DayOption      `json:"option,omitempty"`
	Activities  []ActivityView `json:"activities"`
}
