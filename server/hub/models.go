package hub

import (
	"fmt"
	"strings"
	"time"
)

// Time accepts both RFC 3339 timestamps and the timezone-less ISO 8601
// strings the backend emits for created_at/updated_at (naive UTC).
type Time time.Time

func (t *Time) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*t = Time(time.Time{})
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		parsed, err = time.ParseInLocation("2006-01-02T15:04:05", value, time.UTC)
		if err != nil {
			return fmt.Errorf("failed to parse time %q: %w", value, err)
		}
	}
	*t = Time(parsed)
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).UTC().Format(time.RFC3339) + `"`), nil
}

func (t Time) Time() time.Time {
	return time.Time(t)
}

type User struct {
	ID            int               `json:"id"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	IsAdmin       bool              `json:"is_admin"`
	Bio           string            `json:"bio"`
	SocialMedia   map[string]string `json:"social_media"`
	OAuthAccounts []OAuthAccount    `json:"oauth_accounts"`
	CreatedAt     Time              `json:"created_at"`
	UpdatedAt     Time              `json:"updated_at"`
}

type OAuthAccount struct {
	ID             int            `json:"id"`
	UserID         int            `json:"user_id"`
	Provider       string         `json:"provider"`
	ProviderUserID string         `json:"provider_user_id"`
	MetaData       map[string]any `json:"meta_data"`
	CreatedAt      Time           `json:"created_at"`
	UpdatedAt      Time           `json:"updated_at"`
}

type ClubMember struct {
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
}

type Club struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	Category       string       `json:"category"`
	LogoURL        string       `json:"logo_url"`
	OwnerID        int          `json:"owner_id"`
	Roles          []string     `json:"roles"`
	Members        []ClubMember `json:"members"`
	Events         []Event      `json:"events,omitempty"`
	MembersDetails []User       `json:"members_details,omitempty"`
	CreatedAt      Time         `json:"created_at"`
	UpdatedAt      Time         `json:"updated_at"`
}

type ClubCreate struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	LogoURL     string   `json:"logo_url,omitempty"`
	Roles       []string `json:"roles,omitempty"`
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

// JoinRequest is terminal once accepted or rejected; the backend never
// re-opens it.
type JoinRequest struct {
	ID            int           `json:"id"`
	ClubID        int           `json:"club_id"`
	UserID        int           `json:"user_id"`
	UserName      string        `json:"user_name"`
	ClubName      string        `json:"club_name"`
	Role          string        `json:"role"`
	Message       string        `json:"message"`
	Status        RequestStatus `json:"status"`
	AdminResponse string        `json:"admin_response"`
	UserDetails   *User         `json:"user_details,omitempty"`
	CreatedAt     Time          `json:"created_at"`
	UpdatedAt     Time          `json:"updated_at"`
}

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
)

type Event struct {
	ID            int            `json:"id"`
	ClubID        int            `json:"club_id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	StartDate     Time           `json:"start_date"`
	EndDate       Time           `json:"end_date"`
	Location      string         `json:"location"`
	Fee           float64        `json:"fee"`
	Status        EventStatus    `json:"status"`
	PosterURL     string         `json:"poster_url"`
	Link          string         `json:"link"`
	MetaData      map[string]any `json:"meta_data"`
	Announcements []Announcement `json:"announcements,omitempty"`
	CreatedAt     Time           `json:"created_at"`
	UpdatedAt     Time           `json:"updated_at"`
}

type EventCreate struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	ClubID      int            `json:"club_id"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	Location    string         `json:"location,omitempty"`
	Fee         float64        `json:"fee"`
	PosterURL   string         `json:"poster_url,omitempty"`
	Link        string         `json:"link,omitempty"`
	MetaData    map[string]any `json:"meta_data,omitempty"`
}

type Announcement struct {
	ID        int    `json:"id"`
	EventID   int    `json:"event_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt Time   `json:"created_at"`
	UpdatedAt Time   `json:"updated_at"`
}

type AnnouncementCreate struct {
	EventID int    `json:"event_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UserUpdate struct {
	Name        string            `json:"name,omitempty"`
	Bio         string            `json:"bio,omitempty"`
	SocialMedia map[string]string `json:"social_media,omitempty"`
}

type SignupData struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Password  string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ChatResponse struct {
	Response string `json:"response"`
	Action   string `json:"action"`
}
