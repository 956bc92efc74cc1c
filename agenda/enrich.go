package agenda

import (
	"campus-agenda/models"
)

// EnrichedSets is the reconciliation result: the favorited and attended
// subsets of an event list, display-ready. The partitions are
// independent; an event bookmarked and attended appears in both.
type EnrichedSets struct {
	Favorites  []models.EnrichedEvent `json:"favorites"`
	Attendance []models.EnrichedEvent `json:"attendance"`
}

// Enrich partitions events by the favorite and attendance id-sets and
// projects each selected event to its display form. A missing set is
// simply empty: reconciliation proceeds with zero matches rather than
// failing. One malformed event degrades its own formatted fields but
// never drops or corrupts sibling records.
func Enrich(events []models.Event, favoriteIDs, attendanceIDs map[int]struct{}) EnrichedSets {
	sets := EnrichedSets{
		Favorites:  []models.EnrichedEvent{},
		Attendance: []models.EnrichedEvent{},
	}
	for _, ev := range events {
		if _, ok := favoriteIDs[ev.ID]; ok {
			sets.Favorites = append(sets.Favorites, enrichOne(ev))
		}
		if _, ok := attendanceIDs[ev.ID]; ok {
			sets.Attendance = append(sets.Attendance, enrichOne(ev))
		}
	}
	return sets
}

func enrichOne(ev models.Event) models.EnrichedEvent {
	return models.EnrichedEvent{
		ID:              ev.ID,
		Title:           defaulted(ev.Title, DefaultTitle),
		Department:      defaulted(ev.Department, DefaultDepartment),
		Date:            FormatDate(ev.Date),
		Time:            FormatHour(ev.Date),
		Location:        defaulted(ev.Location, DefaultLocation),
		ImageURL:        defaulted(ev.ImageURL, DefaultImageURL),
		DepartmentColor: CardColor(defaulted(ev.Department, DefaultDepartment), false),
	}
}

// ToDisplay projects a single event for the detail view, applying the
// same defaults plus the bookmark flag and a dark-mode-aware color.
func ToDisplay(ev models.Event, hasBookmark, darkMode bool) models.EventDisplay {
	enriched := enrichOne(ev)
	enriched.DepartmentColor = CardColor(enriched.Department, darkMode)
	return models.EventDisplay{
		EnrichedEvent: enriched,
		Description:   ev.Description,
		HasBookmark:   hasBookmark,
	}
}

func defaulted(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
