package activity

import "strings"

// DayOfWeek uses the backend's enum spelling (MONDAY ... SUNDAY).
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

var Week = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseDayOfWeek accepts any casing ("monday", "Monday", "MONDAY").
func ParseDayOfWeek(s string) (DayOfWeek, bool) {
	d := DayOfWeek(strings.ToUpper(strings.TrimSpace(s)))
	for _, w := range Week {
		if w == d {
			return d, true
		}
	}
	return "", false
}

// Label is the display form, e.g. "Monday".
func (d DayOfWeek) Label() string {
	if d == "" {
		return ""
	}
	s := strings.ToLower(string(d))
	return strings.ToUpper(s[:1]) + s[1:]
}

type Category string

const (
	Education  Category = "Education"
	Music      Category = "Music"
	Fitness    Category = "Fitness"
	Nature     Category = "Nature"
	Cooking    Category = "Cooking"
	Teamwork   Category = "Teamwork"
	Creativity Category = "Creativity"
	Wellness   Category = "Wellness"
	Recreation Category = "Recreation"
	Sports     Category = "Sports"
	Kids       Category = "Kids"
	Workshop   Category = "Workshop"
)

var Categories = []Category{
	Education, Music, Fitness, Nature, Cooking, Teamwork,
	Creativity, Wellness, Recreation, Sports, Kids, Workshop,
}

func (c Category) IsValid() bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// JoinCategories renders categories the way the backend stores them.
func JoinCategories(cs []Category) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

// SplitCategories is the inverse of JoinCategories; unknown entries are dropped.
func SplitCategories(s string) []Category {
	var out []Category
	for _, p := range strings.Split(s, ",") {
		c := Category(strings.TrimSpace(p))
		if c.IsValid() {
			out = append(out, c)
		}
	}
	return out
}
