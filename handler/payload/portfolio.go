package payload

import (
	"time"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/pkg/portal"
)

type ProfileResponse struct {
	Name         string  `json:"name"`
	Title        string  `json:"title"`
	Bio          string  `json:"bio"`
	Email        string  `json:"email"`
	LinkedinURL  string  `json:"linkedin_url"`
	GithubURL    string  `json:"github_url"`
	TwitterURL   string  `json:"twitter_url"`
	ProfileImage *string `json:"profile_image"`
	CVFile       *string `json:"cv_file"`
}

func GetProfileResponse(profile database.Profile) ProfileResponse {
	return ProfileResponse{
		Name:         profile.Name,
		Title:        profile.Title,
		Bio:          profile.Bio,
		Email:        profile.Email,
		LinkedinURL:  profile.LinkedinURL,
		GithubURL:    profile.GithubURL,
		TwitterURL:   profile.TwitterURL,
		ProfileImage: NullableString(profile.ProfileImage),
		CVFile:       NullableString(profile.CVFile),
	}
}

type SkillResponse struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

func GetSkillsResponse(skills []database.Skill) []SkillResponse {
	data := make([]SkillResponse, 0, len(skills))

	for _, skill := range skills {
		data = append(data, SkillResponse{
			ID:          skill.ID,
			Name:        skill.Name,
			Category:    skill.Category,
			Proficiency: skill.Proficiency,
			Icon:        skill.Icon,
			Description: skill.Description,
		})
	}

	return data
}

type ExperienceResponse struct {
	ID           uint64   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location"`
	StartDate    string   `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	CompanyURL   string   `json:"company_url"`
}

func GetExperienceResponse(items []database.Experience) []ExperienceResponse {
	data := make([]ExperienceResponse, 0, len(items))

	for _, item := range items {
		data = append(data, ExperienceResponse{
			ID:           item.ID,
			Company:      item.Company,
			Position:     item.Position,
			Location:     item.Location,
			StartDate:    FormatDate(item.StartDate),
			EndDate:      FormatNullableDate(item.EndDate),
			Current:      item.Current,
			Description:  item.Description,
			Technologies: portal.SplitCommaList(item.Technologies),
			CompanyURL:   item.CompanyURL,
		})
	}

	return data
}

type ProjectResponse struct {
	ID                  uint64    `json:"id"`
	Title               string    `json:"title"`
	Slug                string    `json:"slug"`
	ProjectType         string    `json:"project_type"`
	Description         string    `json:"description"`
	DetailedDescription string    `json:"detailed_description"`
	Technologies        []string  `json:"technologies"`
	GithubURL           string    `json:"github_url"`
	LiveURL             string    `json:"live_url"`
	DemoURL             string    `json:"demo_url"`
	FeaturedImage       *string   `json:"featured_image"`
	IsFeatured          bool      `json:"is_featured"`
	CreatedAt           time.Time `json:"created_at"`
}

type ProjectDetailResponse struct {
	ProjectResponse
	UpdatedAt time.Time `json:"updated_at"`
}

func GetProjectResponse(project database.Project) ProjectResponse {
	return ProjectResponse{
		ID:                  project.ID,
		Title:               project.Title,
		Slug:                project.Slug,
		ProjectType:         project.ProjectType,
		Description:         project.Description,
		DetailedDescription: project.DetailedDescription,
		Technologies:        portal.SplitCommaList(project.Technologies),
		GithubURL:           project.GithubURL,
		LiveURL:             project.LiveURL,
		DemoURL:             project.DemoURL,
		FeaturedImage:       NullableString(project.FeaturedImage),
		IsFeatured:          project.IsFeatured,
		CreatedAt:           project.CreatedAt,
	}
}

func GetProjectsResponse(projects []database.Project) []ProjectResponse {
	data := make([]ProjectResponse, 0, len(projects))

	for _, project := range projects {
		data = append(data, GetProjectResponse(project))
	}

	return data
}

func GetProjectDetailResponse(project database.Project) ProjectDetailResponse {
	return ProjectDetailResponse{
		ProjectResponse: GetProjectResponse(project),
		UpdatedAt:       project.UpdatedAt,
	}
}

type CertificationResponse struct {
	ID            uint64  `json:"id"`
	Name          string  `json:"name"`
	Issuer        string  `json:"issuer"`
	IssueDate     *string `json:"issue_date"`
	ExpiryDate    *string `json:"expiry_date"`
	CredentialID  string  `json:"credential_id"`
	CredentialURL string  `json:"credential_url"`
	BadgeImage    *string `json:"badge_image"`
	Description   string  `json:"description"`
}

func GetCertificationsResponse(items []database.Certification) []CertificationResponse {
	data := make([]CertificationResponse, 0, len(items))

	for _, item := range items {
		data = append(data, CertificationResponse{
			ID:            item.ID,
			Name:          item.Name,
			Issuer:        item.Issuer,
			IssueDate:     FormatNullableDate(item.IssueDate),
			ExpiryDate:    FormatNullableDate(item.ExpiryDate),
			CredentialID:  item.CredentialID,
			CredentialURL: item.CredentialURL,
			BadgeImage:    NullableString(item.BadgeImage),
			Description:   item.Description,
		})
	}

	return data
}
