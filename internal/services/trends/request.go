package trends

import "strings"

// Platform is one selectable social network.
type Platform struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

const DefaultTopic = "AI videos"

// DefaultPlatforms returns the platform catalog in display order with its
// initial selection state. Each call returns a fresh slice.
func DefaultPlatforms() []Platform {
	return []Platform{
		{ID: "instagram", Name: "Instagram", Selected: true},
		{ID: "youtube", Name: "YouTube"},
		{ID: "tiktok", Name: "TikTok"},
		{ID: "twitter", Name: "Twitter/X"},
		{ID: "threads", Name: "Threads"},
	}
}

// LookupPlatform finds a catalog entry by id or display name, ignoring case.
func LookupPlatform(key string) (Platform, bool) {
	key = strings.TrimSpace(key)
	for _, p := range DefaultPlatforms() {
		if strings.EqualFold(p.ID, key) || strings.EqualFold(p.Name, key) {
			return p, true
		}
	}
	return Platform{}, false
}

// Selection is the raw state of the request form.
type Selection struct {
	Platforms    []Platform
	Topic        string
	Month        string
	Day          string
	OutputFormat OutputFormat
}

// NewSelection starts from the form defaults.
func NewSelection() Selection {
	return Selection{
		Platforms:    DefaultPlatforms(),
		Topic:        DefaultTopic,
		OutputFormat: FormatPerPlatform,
	}
}

// Toggle flips the platform with the given id and reports whether it exists.
func (s *Selection) Toggle(id string) bool {
	for i := range s.Platforms {
		if s.Platforms[i].ID == id {
			s.Platforms[i].Selected = !s.Platforms[i].Selected
			return true
		}
	}
	return false
}

// Normalize turns the selection into a TrendRequest. Selected platforms keep
// their display order. No platform selected is the only rejected state; an
// empty topic, month or day passes through unchanged.
func Normalize(sel Selection) (TrendRequest, error) {
	var names []string
	for _, p := range sel.Platforms {
		if p.Selected {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		return TrendRequest{}, ErrNoPlatformSelected
	}

	return TrendRequest{
		Platforms:    names,
		Topic:        sel.Topic,
		Month:        sel.Month,
		Day:          sel.Day,
		OutputFormat: sel.OutputFormat,
	}, nil
}
