package portfolio

import "time"

// Collection names in the record store.
const (
	CollectionHero      = "hero"
	CollectionAbout     = "about"
	CollectionProjects  = "projects"
	CollectionSkills    = "skills"
	CollectionMessages  = "messages"
	CollectionDocuments = "documents"
)

// Hero is the landing-page headline.
type Hero struct {
	ID                int64  `json:"id"`
	Title             string `json:"title"`
	Subtitle          string `json:"subtitle"`
	ImageURL          string `json:"image_url"`
	ViewButtonText    string `json:"view_button_text"`
	ContactButtonText string `json:"contact_button_text"`
}

// HeroInput creates a Hero.
type HeroInput struct {
	Title             string `json:"title" validate:"required"`
	Subtitle          string `json:"subtitle" validate:"required"`
	ImageURL          string `json:"image_url" validate:"omitempty,url"`
	ViewButtonText    string `json:"view_button_text"`
	ContactButtonText string `json:"contact_button_text"`
}

// HeroPatch updates the non-nil fields of a Hero.
type HeroPatch struct {
	Title             *string `json:"title" validate:"omitempty,min=1"`
	Subtitle          *string `json:"subtitle" validate:"omitempty,min=1"`
	ImageURL          *string `json:"image_url" validate:"omitempty,url"`
	ViewButtonText    *string `json:"view_button_text"`
	ContactButtonText *string `json:"contact_button_text"`
}

// Education is one entry of the about section.
type Education struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
}

// About is the biography section.
type About struct {
	ID        int64       `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	ImageURL  string      `json:"image_url"`
	Skills    []string    `json:"skills"`
	Education []Education `json:"education"`
}

// AboutInput creates an About section. Every field is optional.
type AboutInput struct {
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	ImageURL  string      `json:"image_url" validate:"omitempty,url"`
	Skills    []string    `json:"skills"`
	Education []Education `json:"education" validate:"dive"`
}

// AboutPatch updates the non-nil fields of an About section.
type AboutPatch struct {
	Title     *string      `json:"title"`
	Content   *string      `json:"content"`
	ImageURL  *string      `json:"image_url" validate:"omitempty,url"`
	Skills    *[]string    `json:"skills"`
	Education *[]Education `json:"education" validate:"omitempty,dive"`
}

// Project is a portfolio entry.
type Project struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Desc      string    `json:"desc"`
	GitHub    string    `json:"github"`
	Demo      string    `json:"demo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectInput creates a Project.
type ProjectInput struct {
	Title  string `json:"title" validate:"required"`
	Desc   string `json:"desc" validate:"required"`
	GitHub string `json:"github" validate:"omitempty,url"`
	Demo   string `json:"demo" validate:"omitempty,url"`
}

// ProjectPatch updates the non-nil fields of a Project.
type ProjectPatch struct {
	Title  *string `json:"title" validate:"omitempty,min=1"`
	Desc   *string `json:"desc" validate:"omitempty,min=1"`
	GitHub *string `json:"github" validate:"omitempty,url"`
	Demo   *string `json:"demo" validate:"omitempty,url"`
}

// Skill is a named capability. Names are unique.
type Skill struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
}

// SkillInput creates a Skill.
type SkillInput struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Icon     string `json:"icon"`
}

// SkillPatch updates the non-nil fields of a Skill.
type SkillPatch struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Category *string `json:"category" validate:"omitempty,min=1"`
	Icon     *string `json:"icon"`
}

// Message is a contact-form submission.
type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageInput is a contact-form submission from a visitor.
type MessageInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required,max=5000"`
}

// MessagePatch toggles the read flag.
type MessagePatch struct {
	IsRead *bool `json:"is_read" validate:"required"`
}

// ReplyInput is an admin reply to a message.
type ReplyInput struct {
	MessageID      int64  `json:"message_id" validate:"required,min=1"`
	RecipientEmail string `json:"recipient_email" validate:"required,email"`
	ReplyText      string `json:"reply_text" validate:"required"`
}

// DocumentType names a downloadable document slot.
type DocumentType string

const (
	DocumentResume DocumentType = "resume"
	DocumentCV     DocumentType = "cv"
)

// Valid reports whether t is a known document type.
func (t DocumentType) Valid() bool {
	return t == DocumentResume || t == DocumentCV
}

// Document is the metadata of an uploaded PDF. There is at most one per type.
type Document struct {
	ID         int64        `json:"id"`
	Type       DocumentType `json:"type"`
	Filename   string       `json:"filename"`
	Size       int64        `json:"size"`
	UploadedAt time.Time    `json:"uploaded_at"`
}
