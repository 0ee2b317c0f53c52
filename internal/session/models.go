package session

import (
	"time"

	"github.com/PendemixAI/vax-tracker/internal/export"
	"github.com/PendemixAI/vax-tracker/internal/view"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Session owns one dataset seed. Only a hash of the cookie token is stored.
type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TokenHash string    `gorm:"not null;uniqueIndex" json:"-"`
	Seed      int64     `gorm:"not null" json:"seed"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	LastView  View      `gorm:"embedded;embeddedPrefix:view_" json:"last_view"`
}

// View is the persisted form of the last rendered view state.
type View struct {
	Country  string         `json:"country"`
	Region   string         `json:"region"`
	TopN     int            `json:"top_n"`
	Compare  pq.StringArray `gorm:"type:text[]" json:"compare"`
	Download string         `json:"download"`
}

func (Session) TableName() string { return "app_dashboard.sessions" }

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// ViewFromState converts a view state for storage.
func ViewFromState(st view.ViewState) View {
	return View{
		Country:  st.Country,
		Region:   st.Region,
		TopN:     st.TopN,
		Compare:  pq.StringArray(append([]string(nil), st.Compare...)),
		Download: string(st.Download),
	}
}

// State converts a stored view back. An empty view yields the zero state,
// which view.Parse replaces with defaults.
func (v View) State() view.ViewState {
	if v.Country == "" {
		return view.ViewState{}
	}
	return view.ViewState{
		Country:  v.Country,
		Region:   v.Region,
		TopN:     v.TopN,
		Compare:  append([]string(nil), v.Compare...),
		Download: export.Option(v.Download),
	}
}
