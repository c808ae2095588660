package content

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is a []string stored as a JSON array in a TEXT column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("content: marshal string list: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner. NULL and empty strings decode to an
// empty list.
func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("content: cannot scan %T into StringList", src)
	}
	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(raw, l)
}

// Service is a treatment offered by the salon.
type Service struct {
	ID          int64      `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IconName    string     `json:"icon_name"`
	ImagePath   string     `json:"image_path"`
	Features    StringList `json:"features"`
	Price       string     `json:"price"`
	SortOrder   int        `json:"sort_order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ServiceInput is the admin create/update payload for a service.
type ServiceInput struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IconName    string     `json:"icon_name"`
	ImagePath   string     `json:"image_path"`
	Features    StringList `json:"features"`
	Price       string     `json:"price"`
	SortOrder   int        `json:"sort_order"`
}

func (in *ServiceInput) Validate() error {
	if in.Slug == "" || in.Title == "" || in.Description == "" {
		return ErrMissingFields
	}
	return nil
}

// Formation is a training course offered by the salon.
type Formation struct {
	ID           int64      `json:"id"`
	Slug         string     `json:"slug"`
	Title        string     `json:"title"`
	Subtitle     string     `json:"subtitle"`
	Description  string     `json:"description"`
	Level        string     `json:"level"`
	Duration     string     `json:"duration"`
	Participants string     `json:"participants"`
	Price        string     `json:"price"`
	Features     StringList `json:"features"`
	ImagePath    string     `json:"image_path"`
	Badge        string     `json:"badge"`
	SortOrder    int        `json:"sort_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// FormationInput is the admin create/update payload for a formation.
type FormationInput struct {
	Slug         string     `json:"slug"`
	Title        string     `json:"title"`
	Subtitle     string     `json:"subtitle"`
	Description  string     `json:"description"`
	Level        string     `json:"level"`
	Duration     string     `json:"duration"`
	Participants string     `json:"participants"`
	Price        string     `json:"price"`
	Features     StringList `json:"features"`
	ImagePath    string     `json:"image_path"`
	Badge        string     `json:"badge"`
	SortOrder    int        `json:"sort_order"`
}

func (in *FormationInput) Validate() error {
	if in.Slug == "" || in.Title == "" || in.Description == "" {
		return ErrMissingFields
	}
	return nil
}

// TeamMember is a member of the salon staff shown on the site.
type TeamMember struct {
	ID              int64      `json:"id"`
	Slug            string     `json:"slug"`
	Name            string     `json:"name"`
	Role            string     `json:"role"`
	Speciality      string     `json:"speciality"`
	ImagePath       string     `json:"image_path"`
	Experience      string     `json:"experience"`
	Description     string     `json:"description"`
	Certifications  StringList `json:"certifications"`
	Achievements    StringList `json:"achievements"`
	SocialInstagram string     `json:"social_instagram"`
	SocialLinkedin  string     `json:"social_linkedin"`
	SocialEmail     string     `json:"social_email"`
	SortOrder       int        `json:"sort_order"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TeamMemberInput is the admin create/update payload for a team member.
type TeamMemberInput struct {
	Slug            string     `json:"slug"`
	Name            string     `json:"name"`
	Role            string     `json:"role"`
	Speciality      string     `json:"speciality"`
	ImagePath       string     `json:"image_path"`
	Experience      string     `json:"experience"`
	Description     string     `json:"description"`
	Certifications  StringList `json:"certifications"`
	Achievements    StringList `json:"achievements"`
	SocialInstagram string     `json:"social_instagram"`
	SocialLinkedin  string     `json:"social_linkedin"`
	SocialEmail     string     `json:"social_email"`
	SortOrder       int        `json:"sort_order"`
}

func (in *TeamMemberInput) Validate() error {
	if in.Slug == "" || in.Name == "" || in.Role == "" {
		return ErrMissingFields
	}
	return nil
}

// Testimonial is a client review shown on the site.
type Testimonial struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	ImagePath string    `json:"image_path"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	Service   string    `json:"service"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TestimonialInput is the admin create/update payload for a testimonial.
type TestimonialInput struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	ImagePath string `json:"image_path"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	Service   string `json:"service"`
	SortOrder int    `json:"sort_order"`
}

func (in *TestimonialInput) Validate() error {
	if in.Slug == "" || in.Name == "" || in.Text == "" {
		return ErrMissingFields
	}
	if in.Rating < 1 || in.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}

// FAQ is a question and answer pair shown on the site.
type FAQ struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FAQInput is the admin create/update payload for an FAQ entry.
type FAQInput struct {
	Slug      string `json:"slug"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Category  string `json:"category"`
	SortOrder int    `json:"sort_order"`
}

func (in *FAQInput) Validate() error {
	if in.Slug == "" || in.Question == "" || in.Answer == "" {
		return ErrMissingFields
	}
	return nil
}

// GalleryItem is one image in the site gallery.
type GalleryItem struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	ImagePath   string    `json:"image_path"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GalleryItemInput is the admin create/update payload for a gallery item.
type GalleryItemInput struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	ImagePath   string `json:"image_path"`
	Category    string `json:"category"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

func (in *GalleryItemInput) Validate() error {
	if in.Slug == "" || in.Title == "" || in.ImagePath == "" {
		return ErrMissingFields
	}
	return nil
}

// Parameter is a keyed site setting.
type Parameter struct {
	ID          int64     `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
