// Package seed supplies the store's initial collection: a built-in sample
// set, or an ordered JSON file of form-shaped records.
package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"eventdesk/internal/domain"
)

// Load reads an ordered seed of form-shaped records from a JSON file and
// materializes them the same way Create does (fresh ids, derived slugs,
// both timestamps set to load time).
func Load(path string) ([]*domain.EventRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var forms []domain.EventFormData
	if err := json.Unmarshal(data, &forms); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	now := time.Now()
	events := make([]*domain.EventRecord, len(forms))
	for i := range forms {
		events[i] = domain.NewEvent(uuid.NewString(), &forms[i], now)
	}
	return events, nil
}

// Events returns the built-in sample collection: a mix of statuses and
// categories so every dashboard view has something to show.
func Events() []*domain.EventRecord {
	now := time.Now()
	build := func(form domain.EventFormData) *domain.EventRecord {
		return domain.NewEvent(uuid.NewString(), &form, now)
	}
	date := func(daysFromNow int) string {
		return now.AddDate(0, 0, daysFromNow).Format("2006-01-02")
	}

	return []*domain.EventRecord{
		build(domain.EventFormData{
			Title:            "Annual Tech Conference 2024",
			ShortDescription: "The biggest tech conference of the year with industry leaders and innovative workshops.",
			Description:      "Join us for the biggest tech conference of the year featuring keynote speakers from leading tech companies, workshops, networking opportunities, and the latest in technology innovations.",
			StartDate:        date(10),
			EndDate:          date(12),
			StartTime:        "09:00",
			EndTime:          "17:00",
			Location: domain.EventLocation{
				Address:      "123 Convention Center Way",
				City:         "San Francisco",
				State:        "CA",
				ZipCode:      "94103",
				Country:      "USA",
				VenueDetails: "Main Exhibition Hall, 2nd Floor",
			},
			Images: []domain.EventImage{
				{ID: uuid.NewString(), URL: "https://img.example.com/tech-conference.jpg", Alt: "Tech Conference Banner"},
				{ID: uuid.NewString(), URL: "https://img.example.com/tech-workshop.jpg", Alt: "Conference Workshop"},
			},
			Category:   "Technology",
			Tags:       []string{"tech", "conference", "innovation", "networking"},
			Status:     domain.StatusPublished,
			IsPublic:   true,
			IsFeatured: true,
			Capacity:   1500,
			Contact: domain.EventContact{
				Name:  "Event Organizer",
				Email: "organizer@techconference.com",
				Phone: "+1 (555) 123-4567",
			},
			Tickets: []domain.EventTicket{
				{ID: uuid.NewString(), Name: "Early Bird", Price: 299.99, AvailableQuantity: 200, MaxPerOrder: 2},
				{ID: uuid.NewString(), Name: "Regular", Price: 399.99, AvailableQuantity: 800, MaxPerOrder: 5},
			},
		}),
		build(domain.EventFormData{
			Title:            "Summer Music Festival",
			ShortDescription: "Three days of live music across five stages in Golden Meadow Park.",
			Description:      "Our annual open-air festival returns with headline acts, local bands, food trucks, and a family zone. Camping passes available.",
			StartDate:        date(30),
			EndDate:          date(32),
			StartTime:        "12:00",
			EndTime:          "23:00",
			Location: domain.EventLocation{
				Address: "500 Golden Meadow Park",
				City:    "Austin",
				State:   "TX",
				ZipCode: "78701",
				Country: "USA",
			},
			Images: []domain.EventImage{
				{ID: uuid.NewString(), URL: "https://img.example.com/music-festival.jpg", Alt: "Festival Main Stage"},
			},
			Category:   "Music",
			Tags:       []string{"music", "festival", "outdoor"},
			Status:     domain.StatusPublished,
			IsPublic:   true,
			IsFeatured: true,
			Capacity:   10000,
			Contact: domain.EventContact{
				Name:  "Festival Team",
				Email: "hello@summermusicfest.com",
			},
			Tickets: []domain.EventTicket{
				{ID: uuid.NewString(), Name: "Day Pass", Price: 89, AvailableQuantity: 3000, MaxPerOrder: 6},
				{ID: uuid.NewString(), Name: "Weekend Pass", Price: 219, AvailableQuantity: 5000, MaxPerOrder: 4},
			},
		}),
		build(domain.EventFormData{
			Title:            "Startup Pitch Workshop",
			ShortDescription: "Hands-on workshop on pitching your startup to investors.",
			Description:      "A half-day working session covering pitch structure, storytelling, and Q&A drills, finishing with live feedback from a panel of seed investors.",
			StartDate:        date(20),
			EndDate:          date(20),
			StartTime:        "13:00",
			EndTime:          "18:00",
			Location: domain.EventLocation{
				Address:      "42 Innovation Hub",
				City:         "New York",
				State:        "NY",
				ZipCode:      "10012",
				Country:      "USA",
				VenueDetails: "Room 3B",
			},
			Category: "Business",
			Tags:     []string{"startup", "pitching", "workshop"},
			Status:   domain.StatusDraft,
			IsPublic: false,
			Capacity: 40,
			Contact: domain.EventContact{
				Name:  "Program Office",
				Email: "programs@innovationhub.example",
			},
		}),
		build(domain.EventFormData{
			Title:            "City Marathon 2024",
			ShortDescription: "The annual 42km run through the city center.",
			Description:      "Cancelled this year due to road works along the waterfront section of the course. Registered runners will be refunded automatically.",
			StartDate:        date(45),
			EndDate:          date(45),
			StartTime:        "07:00",
			EndTime:          "14:00",
			Location: domain.EventLocation{
				Address: "1 City Hall Plaza",
				City:    "Boston",
				State:   "MA",
				ZipCode: "02201",
				Country: "USA",
			},
			Category: "Sports",
			Tags:     []string{"running", "marathon", "charity"},
			Status:   domain.StatusCancelled,
			IsPublic: true,
			Capacity: 25000,
			Contact: domain.EventContact{
				Name:  "Race Director",
				Email: "director@citymarathon.example",
			},
		}),
		build(domain.EventFormData{
			Title:            "Modern Art Retrospective",
			ShortDescription: "A month-long exhibition of mid-century modern art.",
			Description:      "The retrospective gathered over two hundred works on loan from private collections, with weekly curator tours and an evening lecture series.",
			StartDate:        date(-40),
			EndDate:          date(-10),
			StartTime:        "10:00",
			EndTime:          "18:00",
			Location: domain.EventLocation{
				Address: "88 Gallery Row",
				City:    "Chicago",
				State:   "IL",
				ZipCode: "60601",
				Country: "USA",
			},
			Category: "Arts & Culture",
			Tags:     []string{"art", "exhibition"},
			Status:   domain.StatusCompleted,
			IsPublic: true,
			Contact: domain.EventContact{
				Name:  "Gallery Desk",
				Email: "desk@galleryrow.example",
			},
		}),
		build(domain.EventFormData{
			Title:            "Neighborhood Food Fair",
			ShortDescription: "Local producers, street food, and cooking demos on the riverfront.",
			Description:      "A free community fair with forty stalls of regional produce, live cooking demonstrations every hour, and a kids' baking corner.",
			StartDate:        date(5),
			EndDate:          date(6),
			StartTime:        "11:00",
			EndTime:          "20:00",
			Location: domain.EventLocation{
				Address: "Riverfront Promenade",
				City:    "Portland",
				State:   "OR",
				ZipCode: "97204",
				Country: "USA",
			},
			Category: "Food & Drink",
			Tags:     []string{"food", "community", "market"},
			Status:   domain.StatusPublished,
			IsPublic: true,
			Contact: domain.EventContact{
				Name:  "Fair Committee",
				Email: "fair@riverfront.example",
			},
		}),
	}
}
