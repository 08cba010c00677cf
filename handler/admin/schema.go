package admin

import (
	"strings"

	"github.com/Matias-sh/mi-portafolio/database"
)

func oneOf(values []string) string {
	return "required,oneof=" + strings.Join(values, " ")
}

func with(fields []Field, extra ...Field) []Field {
	out := make([]Field, 0, len(fields)+len(extra))
	out = append(out, fields...)

	return append(out, extra...)
}

// Schema is the static list of resources exposed under /admin.
var Schema = []Resource{
	{
		Name:  "profiles",
		Label: "Profiles",
		Fields: with(timestamps,
			readOnly("updated_at", KindDateTime),
			field("name", KindString, "required,max=100"),
			field("title", KindString, "required,max=200"),
			field("bio", KindText, "required"),
			field("profile_image", KindString, "max=255"),
			field("cv_file", KindString, "max=255"),
			field("linkedin_url", KindString, "omitempty,url,max=200"),
			field("github_url", KindString, "omitempty,url,max=200"),
			field("twitter_url", KindString, "omitempty,url,max=200"),
			field("email", KindString, "required,email,max=254"),
		),
		Search:   []string{"name", "title", "email"},
		Ordering: []string{"id"},
		New: func() any {
			return &database.Profile{
				Name:  "Matías Britez",
				Title: "Técnico en Programación | Cybersecurity Specialist",
			}
		},
		NewList: func() any { return &[]database.Profile{} },
	},
	{
		Name:  "skills",
		Label: "Skills",
		Fields: with(timestamps,
			field("name", KindString, "required,max=100"),
			field("category", KindString, oneOf(database.SkillCategories)),
			field("proficiency", KindInt, "min=1,max=100"),
			field("icon", KindString, "max=50"),
			field("description", KindText, ""),
		),
		Search:   []string{"name", "description"},
		Filters:  []Filter{{Name: "category", Kind: KindString}},
		Ordering: []string{"category", "-proficiency"},
		New:      func() any { return &database.Skill{} },
		NewList:  func() any { return &[]database.Skill{} },
	},
	{
		Name:  "experiences",
		Label: "Experiences",
		Fields: with(timestamps,
			field("company", KindString, "required,max=200"),
			field("position", KindString, "required,max=200"),
			field("location", KindString, "max=100"),
			field("start_date", KindDate, "required"),
			field("end_date", KindDate, ""),
			field("current", KindBool, ""),
			field("description", KindText, "required"),
			field("technologies", KindString, "required,max=500"),
			field("company_url", KindString, "omitempty,url,max=200"),
		),
		Search:   []string{"company", "position", "description"},
		Filters:  []Filter{{Name: "current", Kind: KindBool}},
		Ordering: []string{"-start_date"},
		New:      func() any { return &database.Experience{} },
		NewList:  func() any { return &[]database.Experience{} },
	},
	{
		Name:  "projects",
		Label: "Projects",
		Fields: with(timestamps,
			readOnly("updated_at", KindDateTime),
			field("title", KindString, "required,max=200"),
			Field{Name: "slug", Kind: KindString, Rules: "max=255,slug", Immutable: true, Derived: true},
			field("project_type", KindString, oneOf(database.ProjectTypes)),
			field("description", KindText, "required"),
			field("detailed_description", KindText, ""),
			field("technologies", KindString, "required,max=500"),
			field("github_url", KindString, "omitempty,url,max=200"),
			field("live_url", KindString, "omitempty,url,max=200"),
			field("demo_url", KindString, "omitempty,url,max=200"),
			field("featured_image", KindString, "max=255"),
			field("is_featured", KindBool, ""),
			field("is_active", KindBool, ""),
		),
		Search: []string{"title", "description", "technologies"},
		Filters: []Filter{
			{Name: "project_type", Kind: KindString},
			{Name: "is_featured", Kind: KindBool},
			{Name: "is_active", Kind: KindBool},
		},
		Ordering: []string{"-created_at"},
		New:      func() any { return &database.Project{IsActive: true} },
		NewList:  func() any { return &[]database.Project{} },
	},
	{
		Name:  "certifications",
		Label: "Certifications",
		Fields: with(timestamps,
			field("name", KindString, "required,max=200"),
			field("issuer", KindString, "required,max=100"),
			field("issue_date", KindDate, ""),
			field("expiry_date", KindDate, ""),
			field("credential_id", KindString, "max=100"),
			field("credential_url", KindString, "omitempty,url,max=200"),
			field("badge_image", KindString, "max=255"),
			field("description", KindText, ""),
		),
		Search:   []string{"name", "issuer", "description"},
		Filters:  []Filter{{Name: "issuer", Kind: KindString}},
		Ordering: []string{"-issue_date"},
		New:      func() any { return &database.Certification{} },
		NewList:  func() any { return &[]database.Certification{} },
	},
	{
		Name:  "contact-messages",
		Label: "Contact messages",
		Fields: with(timestamps,
			Field{Name: "name", Kind: KindString, Rules: "required,max=100", Immutable: true},
			Field{Name: "email", Kind: KindString, Rules: "required,email,max=254", Immutable: true},
			Field{Name: "subject", Kind: KindString, Rules: "required,max=200", Immutable: true},
			Field{Name: "message", Kind: KindText, Rules: "required", Immutable: true},
			readOnly("ip_address", KindString),
			readOnly("user_agent", KindText),
			field("read", KindBool, ""),
			field("replied", KindBool, ""),
		),
		Search: []string{"name", "email", "subject", "message"},
		Filters: []Filter{
			{Name: "read", Kind: KindBool},
			{Name: "replied", Kind: KindBool},
		},
		Ordering: []string{"-created_at"},
		Actions: []Action{
			{Name: "mark_as_read", Label: "Marcar como leído", Column: "read", Value: true},
			{Name: "mark_as_replied", Label: "Marcar como respondido", Column: "replied", Value: true},
		},
		New:     func() any { return &database.ContactMessage{} },
		NewList: func() any { return &[]database.ContactMessage{} },
	},
	{
		Name:  "categories",
		Label: "Categories",
		Fields: with(timestamps,
			field("name", KindString, "required,max=100"),
			Field{Name: "slug", Kind: KindString, Rules: "max=255,slug", Derived: true},
			field("description", KindText, ""),
			field("color", KindString, "required,hexcolour"),
			field("icon", KindString, "max=50"),
		),
		Search:      []string{"name", "description"},
		Ordering:    []string{"name"},
		Invalidates: writeUpCaches,
		New:         func() any { return &database.Category{Color: database.DefaultCategoryColor} },
		NewList:     func() any { return &[]database.Category{} },
	},
	{
		Name:  "tags",
		Label: "Tags",
		Fields: with(timestamps,
			field("name", KindString, "required,max=50"),
			Field{Name: "slug", Kind: KindString, Rules: "max=255,slug", Derived: true},
		),
		Search:      []string{"name"},
		Ordering:    []string{"name"},
		Invalidates: writeUpCaches,
		New:         func() any { return &database.Tag{} },
		NewList:     func() any { return &[]database.Tag{} },
	},
	{
		Name:  "writeups",
		Label: "Write-ups",
		Fields: with(timestamps,
			readOnly("updated_at", KindDateTime),
			field("title", KindString, "required,max=200"),
			Field{Name: "slug", Kind: KindString, Rules: "max=255,slug", Derived: true},
			field("subtitle", KindString, "max=300"),
			field("category_id", KindRelation, ""),
			field("platform", KindString, oneOf(database.WriteUpPlatforms)),
			field("difficulty", KindString, oneOf(database.WriteUpDifficulties)),
			field("machine_ip", KindString, "omitempty,ip"),
			field("machine_url", KindString, "omitempty,url,max=200"),
			field("summary", KindText, "required"),
			field("content", KindText, "required"),
			field("featured_image", KindString, "max=255"),
			field("is_featured", KindBool, ""),
			field("is_published", KindBool, ""),
			field("reading_time", KindInt, "min=1"),
			readOnly("views_count", KindInt),
			field("published_at", KindDateTime, ""),
		),
		Search: []string{"title", "subtitle", "summary", "content"},
		Filters: []Filter{
			{Name: "platform", Kind: KindString},
			{Name: "difficulty", Kind: KindString},
			{Name: "category_id", Kind: KindInt},
			{Name: "is_featured", Kind: KindBool},
			{Name: "is_published", Kind: KindBool},
		},
		Ordering: []string{"-published_at"},
		Actions: []Action{
			{Name: "mark_as_featured", Label: "Marcar como destacado", Column: "is_featured", Value: true},
			{Name: "mark_as_published", Label: "Marcar como publicado", Column: "is_published", Value: true},
		},
		Tags:        true,
		Preloads:    []string{"Category", "Tags"},
		Invalidates: writeUpCaches,
		New: func() any {
			return &database.WriteUp{
				IsPublished: true,
				ReadingTime: database.DefaultReadingTime,
			}
		},
		NewList: func() any { return &[]database.WriteUp{} },
	},
	{
		Name:  "writeup-images",
		Label: "Write-up images",
		Fields: with(timestamps,
			field("writeup_id", KindRelation, "required"),
			field("image", KindString, "required,max=255"),
			field("caption", KindString, "max=200"),
			field("alt_text", KindString, "max=200"),
		),
		Search:   []string{"caption"},
		Filters:  []Filter{{Name: "writeup_id", Kind: KindInt}},
		Ordering: []string{"-created_at"},
		New:      func() any { return &database.WriteUpImage{} },
		NewList:  func() any { return &[]database.WriteUpImage{} },
	},
	{
		Name:  "tools",
		Label: "Tools",
		Fields: with(timestamps,
			field("name", KindString, "required,max=100"),
			field("description", KindText, "required"),
			field("category", KindString, "required,max=50"),
			field("official_url", KindString, "omitempty,url,max=200"),
			field("github_url", KindString, "omitempty,url,max=200"),
			field("icon", KindString, "max=50"),
			field("is_free", KindBool, ""),
		),
		Search: []string{"name", "description", "category"},
		Filters: []Filter{
			{Name: "category", Kind: KindString},
			{Name: "is_free", Kind: KindBool},
		},
		Ordering: []string{"category", "name"},
		New:      func() any { return &database.Tool{IsFree: true} },
		NewList:  func() any { return &[]database.Tool{} },
	},
}

// Lookup finds a resource by its route name.
func Lookup(name string) (Resource, bool) {
	for _, resource := range Schema {
		if resource.Name == name {
			return resource, true
		}
	}

	return Resource{}, false
}
