package database

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const DefaultCategoryColor = "#00ffff"
const DefaultReadingTime = 5

var SkillCategories = []string{"pentesting", "mobile", "backend", "tools"}
var ProjectTypes = []string{"mobile", "web", "security", "ctf", "lab"}
var WriteUpPlatforms = []string{"hackthebox", "tryhackme", "vulnhub", "ctftime", "picoctf", "overthewire", "custom"}
var WriteUpDifficulties = []string{"easy", "medium", "hard", "insane"}

type Profile struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Bio          string    `gorm:"type:text;not null" json:"bio"`
	ProfileImage string    `gorm:"column:profile_image;type:varchar(255)" json:"profile_image"`
	CVFile       string    `gorm:"column:cv_file;type:varchar(255)" json:"cv_file"`
	LinkedinURL  string    `gorm:"column:linkedin_url;type:varchar(200)" json:"linkedin_url"`
	GithubURL    string    `gorm:"column:github_url;type:varchar(200)" json:"github_url"`
	TwitterURL   string    `gorm:"column:twitter_url;type:varchar(200)" json:"twitter_url"`
	Email        string    `gorm:"type:varchar(254);not null" json:"email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Skill struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Category    string    `gorm:"type:varchar(20);not null;index" json:"category"`
	Proficiency int       `gorm:"not null" json:"proficiency"`
	Icon        string    `gorm:"type:varchar(50)" json:"icon"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Experience struct {
	ID           uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Company      string          `gorm:"type:varchar(200);not null" json:"company"`
	Position     string          `gorm:"type:varchar(200);not null" json:"position"`
	Location     string          `gorm:"type:varchar(100)" json:"location"`
	StartDate    datatypes.Date  `gorm:"not null;index" json:"start_date"`
	EndDate      *datatypes.Date `json:"end_date"`
	Current      bool            `gorm:"not null" json:"current"`
	Description  string          `gorm:"type:text;not null" json:"description"`
	Technologies string          `gorm:"type:varchar(500);not null" json:"technologies"`
	CompanyURL   string          `gorm:"column:company_url;type:varchar(200)" json:"company_url"`
	CreatedAt    time.Time       `json:"created_at"`
}

type Project struct {
	ID                  uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title               string    `gorm:"type:varchar(200);not null" json:"title"`
	Slug                string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	ProjectType         string    `gorm:"type:varchar(20);not null" json:"project_type"`
	Description         string    `gorm:"type:text;not null" json:"description"`
	DetailedDescription string    `gorm:"type:text" json:"detailed_description"`
	Technologies        string    `gorm:"type:varchar(500);not null" json:"technologies"`
	GithubURL           string    `gorm:"column:github_url;type:varchar(200)" json:"github_url"`
	LiveURL             string    `gorm:"column:live_url;type:varchar(200)" json:"live_url"`
	DemoURL             string    `gorm:"column:demo_url;type:varchar(200)" json:"demo_url"`
	FeaturedImage       string    `gorm:"type:varchar(255)" json:"featured_image"`
	IsFeatured          bool      `gorm:"not null;index" json:"is_featured"`
	IsActive            bool      `gorm:"not null;index" json:"is_active"`
	CreatedAt           time.Time `gorm:"index" json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type Certification struct {
	ID            uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string          `gorm:"type:varchar(200);not null" json:"name"`
	Issuer        string          `gorm:"type:varchar(100);not null" json:"issuer"`
	IssueDate     *datatypes.Date `json:"issue_date"`
	ExpiryDate    *datatypes.Date `json:"expiry_date"`
	CredentialID  string          `gorm:"column:credential_id;type:varchar(100)" json:"credential_id"`
	CredentialURL string          `gorm:"column:credential_url;type:varchar(200)" json:"credential_url"`
	BadgeImage    string          `gorm:"type:varchar(255)" json:"badge_image"`
	Description   string          `gorm:"type:text" json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
}

type ContactMessage struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(254);not null" json:"email"`
	Subject   string    `gorm:"type:varchar(200);not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IPAddress *string   `gorm:"column:ip_address;type:varchar(45)" json:"ip_address"`
	UserAgent string    `gorm:"type:text" json:"user_agent"`
	Read      bool      `gorm:"not null" json:"read"`
	Replied   bool      `gorm:"not null" json:"replied"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

type Category struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Slug        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Color       string    `gorm:"type:varchar(7);not null" json:"color"`
	Icon        string    `gorm:"type:varchar(50)" json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
}

type Tag struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	Slug      string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

type WriteUp struct {
	ID            uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string         `gorm:"type:varchar(200);not null" json:"title"`
	Slug          string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Subtitle      string         `gorm:"type:varchar(300)" json:"subtitle"`
	CategoryID    *uint64        `gorm:"index" json:"category_id"`
	Category      *Category      `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"category,omitempty"`
	Tags          []Tag          `gorm:"many2many:writeup_tags;joinForeignKey:WriteupID;joinReferences:TagID;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Images        []WriteUpImage `gorm:"foreignKey:WriteupID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Platform      string         `gorm:"type:varchar(20);not null;index" json:"platform"`
	Difficulty    string         `gorm:"type:varchar(10);not null;index" json:"difficulty"`
	MachineIP     *string        `gorm:"column:machine_ip;type:varchar(45)" json:"machine_ip"`
	MachineURL    string         `gorm:"column:machine_url;type:varchar(200)" json:"machine_url"`
	Summary       string         `gorm:"type:text;not null" json:"summary"`
	Content       string         `gorm:"type:text;not null" json:"content"`
	FeaturedImage string         `gorm:"type:varchar(255)" json:"featured_image"`
	IsFeatured    bool           `gorm:"not null;index" json:"is_featured"`
	IsPublished   bool           `gorm:"not null;index" json:"is_published"`
	ReadingTime   int            `gorm:"not null" json:"reading_time"`
	ViewsCount    uint64         `gorm:"not null" json:"views_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	PublishedAt   time.Time      `gorm:"index" json:"published_at"`
}

func (WriteUp) TableName() string {
	return "writeups"
}

type WriteUpImage struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	WriteupID uint64    `gorm:"column:writeup_id;not null;index" json:"writeup_id"`
	Image     string    `gorm:"type:varchar(255);not null" json:"image"`
	Caption   string    `gorm:"type:varchar(200)" json:"caption"`
	AltText   string    `gorm:"type:varchar(200)" json:"alt_text"`
	CreatedAt time.Time `json:"created_at"`
}

func (WriteUpImage) TableName() string {
	return "writeup_images"
}

type Tool struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"type:varchar(50);not null;index" json:"category"`
	OfficialURL string    `gorm:"column:official_url;type:varchar(200)" json:"official_url"`
	GithubURL   string    `gorm:"column:github_url;type:varchar(200)" json:"github_url"`
	Icon        string    `gorm:"type:varchar(50)" json:"icon"`
	IsFree      bool      `gorm:"not null" json:"is_free"`
	CreatedAt   time.Time `json:"created_at"`
}

type AdminUser struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"type:varchar(150);not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ---- hooks

func (p *Project) BeforeCreate(*gorm.DB) error {
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}

	return requireSlug(p.Slug, "project")
}

func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}

	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}

	return requireSlug(c.Slug, "category")
}

// BeforeDelete detaches the category from its write-ups.
func (c *Category) BeforeDelete(tx *gorm.DB) error {
	return tx.Model(&WriteUp{}).
		Where("category_id = ?", c.ID).
		UpdateColumn("category_id", nil).
		Error
}

func (t *Tag) BeforeCreate(*gorm.DB) error {
	if t.Slug == "" {
		t.Slug = Slugify(t.Name)
	}

	return requireSlug(t.Slug, "tag")
}

func (t *Tag) BeforeDelete(tx *gorm.DB) error {
	return tx.Exec("DELETE FROM writeup_tags WHERE tag_id = ?", t.ID).Error
}

func (w *WriteUp) BeforeCreate(*gorm.DB) error {
	if w.Slug == "" {
		w.Slug = Slugify(w.Title)
	}

	if w.PublishedAt.IsZero() {
		w.PublishedAt = time.Now().UTC()
	}

	if w.ReadingTime <= 0 {
		w.ReadingTime = DefaultReadingTime
	}

	return requireSlug(w.Slug, "writeup")
}

// BeforeDelete removes the gallery and the tag links of the write-up.
func (w *WriteUp) BeforeDelete(tx *gorm.DB) error {
	if err := tx.Where("writeup_id = ?", w.ID).Delete(&WriteUpImage{}).Error; err != nil {
		return err
	}

	return tx.Exec("DELETE FROM writeup_tags WHERE writeup_id = ?", w.ID).Error
}
