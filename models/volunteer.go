package models

import "time"

// HistoryEntry records one completed opportunity. Insertion order is the
// chronological order of completion; the slice is append-only.
type HistoryEntry struct {
	OpportunityID string    `json:"opportunityId" dynamodbav:"opportunity_id"`
	Date          time.Time `json:"date" dynamodbav:"date"`
}

// Volunteer represents an individual user who can complete opportunities.
//
// Volunteering maps a free-text city name to that volunteer's completion count
// for the city. The counter is incremented independently of History when a
// completion is recorded; it is never recomputed from History on read.
type Volunteer struct {
	ID                  string         `json:"id" dynamodbav:"id"`
	Name                string         `json:"name" dynamodbav:"name"`
	Phone               string         `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Email               string         `json:"email" dynamodbav:"email"`
	ProfileImage        string         `json:"profileImage,omitempty" dynamodbav:"profile_image,omitempty"`
	AboutMe             string         `json:"aboutMe" dynamodbav:"about_me"`
	PreferredCategories []string       `json:"preferredCategories" dynamodbav:"preferred_categories"`
	Volunteering        map[string]int `json:"volunteering" dynamodbav:"volunteering"`
	History             []HistoryEntry `json:"history" dynamodbav:"history"`
	CreatedAt           time.Time      `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at" dynamodbav:"updated_at"`
}

// TotalEvents sums the per-city counters. Derived, never stored.
func (v *Volunteer) TotalEvents() int {
	total := 0
	for _, count := range v.Volunteering {
		total += count
	}
	return total
}

// RegisterVolunteer is the request body for creating a volunteer on first
// sign-in through the external identity provider
// @Description Volunteer registration request from external-auth signup
type RegisterVolunteer struct {
	Name         string `json:"name" binding:"required" example:"Jane Doe"`
	Email        string `json:"email" binding:"required,email" example:"jane@example.com"`
	Phone        string `json:"phone,omitempty" example:"+14155550123"`
	ProfileImage string `json:"profileImage,omitempty" example:"https://example.com/avatar.jpg"`
}

// CheckEmailRequest is the body for the email existence probe used by the
// external-auth sign-in flow
type CheckEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VolunteerRef is the minimal-disclosure volunteer shape returned by the
// email probe
type VolunteerRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// VolunteerProfilePatch carries a partial profile update. A nil field is
// omitted and left untouched; a non-nil field overwrites, including a
// present-but-empty value.
type VolunteerProfilePatch struct {
	Name                *string   `json:"name,omitempty"`
	AboutMe             *string   `json:"aboutMe,omitempty"`
	PreferredCategories *[]string `json:"preferredCategories,omitempty"`
	ProfileImage        *string   `json:"profileImage,omitempty"`
}

// RecordCompletionRequest is the body for recording a completed opportunity
type RecordCompletionRequest struct {
	OpportunityID string `json:"opportunityId" binding:"required"`
}

// ResolvedHistoryEntry is a history entry with its opportunity reference
// resolved. Opportunity is nil when the referenced document was deleted.
type ResolvedHistoryEntry struct {
	Opportunity *OpportunitySummary `json:"opportunity"`
	Date        time.Time           `json:"date"`
}

// VolunteerProfile is the aggregate profile view: the volunteer's own fields
// plus the derived total and the resolved history
type VolunteerProfile struct {
	ID                  string                 `json:"id"`
	Name                string                 `json:"name"`
	Email               string                 `json:"email"`
	Phone               string                 `json:"phone,omitempty"`
	AboutMe             string                 `json:"aboutMe"`
	PreferredCategories []string               `json:"preferredCategories"`
	ProfileImage        string                 `json:"profileImage,omitempty"`
	TotalEvents         int                    `json:"totalEvents"`
	EventsByCity        map[string]int         `json:"eventsByCity"`
	History             []ResolvedHistoryEntry `json:"history"`
}

// LeaderboardEntry is one row of a city leaderboard. Name only, no contact
// details.
type LeaderboardEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	EventsCount int    `json:"eventsCount"`
}
