package payload

import (
	"time"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/database/repository"
)

const UnknownDifficultyColor = "#6b7280"

var difficultyColors = map[string]string{
	"easy":   "#10b981",
	"medium": "#f59e0b",
	"hard":   "#ef4444",
	"insane": "#8b5cf6",
}

func DifficultyColor(difficulty string) string {
	if colour, ok := difficultyColors[difficulty]; ok {
		return colour
	}

	return UnknownDifficultyColor
}

type CategorySummary struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}

type TagSummary struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ImageResponse struct {
	Image   string `json:"image"`
	Caption string `json:"caption"`
	AltText string `json:"alt_text"`
}

type WriteUpSummaryResponse struct {
	ID              uint64           `json:"id"`
	Title           string           `json:"title"`
	Slug            string           `json:"slug"`
	Subtitle        string           `json:"subtitle"`
	Platform        string           `json:"platform"`
	Difficulty      string           `json:"difficulty"`
	DifficultyColor string           `json:"difficulty_color"`
	Summary         string           `json:"summary"`
	FeaturedImage   *string          `json:"featured_image"`
	IsFeatured      bool             `json:"is_featured"`
	ReadingTime     int              `json:"reading_time"`
	ViewsCount      uint64           `json:"views_count"`
	PublishedAt     time.Time        `json:"published_at"`
	Category        *CategorySummary `json:"category"`
	Tags            []TagSummary     `json:"tags"`
}

type WriteUpDetailResponse struct {
	WriteUpSummaryResponse
	MachineIP  *string         `json:"machine_ip"`
	MachineURL string          `json:"machine_url"`
	Content    string          `json:"content"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Images     []ImageResponse `json:"images"`
}

func getTagSummaries(tags []database.Tag) []TagSummary {
	data := make([]TagSummary, 0, len(tags))

	for _, tag := range tags {
		data = append(data, TagSummary{Name: tag.Name, Slug: tag.Slug})
	}

	return data
}

func getCategorySummary(category *database.Category, withIcon bool) *CategorySummary {
	if category == nil {
		return nil
	}

	summary := CategorySummary{
		Name:  category.Name,
		Slug:  category.Slug,
		Color: category.Color,
	}

	if withIcon {
		summary.Icon = category.Icon
	}

	return &summary
}

func getWriteUpSummary(writeup database.WriteUp, withIcon bool) WriteUpSummaryResponse {
	return WriteUpSummaryResponse{
		ID:              writeup.ID,
		Title:           writeup.Title,
		Slug:            writeup.Slug,
		Subtitle:        writeup.Subtitle,
		Platform:        writeup.Platform,
		Difficulty:      writeup.Difficulty,
		DifficultyColor: DifficultyColor(writeup.Difficulty),
		Summary:         writeup.Summary,
		FeaturedImage:   NullableString(writeup.FeaturedImage),
		IsFeatured:      writeup.IsFeatured,
		ReadingTime:     writeup.ReadingTime,
		ViewsCount:      writeup.ViewsCount,
		PublishedAt:     writeup.PublishedAt,
		Category:        getCategorySummary(writeup.Category, withIcon),
		Tags:            getTagSummaries(writeup.Tags),
	}
}

func GetWriteUpsResponse(writeups []database.WriteUp) []WriteUpSummaryResponse {
	data := make([]WriteUpSummaryResponse, 0, len(writeups))

	for _, writeup := range writeups {
		data = append(data, getWriteUpSummary(writeup, false))
	}

	return data
}

func GetWriteUpDetailResponse(writeup database.WriteUp) WriteUpDetailResponse {
	images := make([]ImageResponse, 0, len(writeup.Images))

	for _, image := range writeup.Images {
		images = append(images, ImageResponse{
			Image:   image.Image,
			Caption: image.Caption,
			AltText: image.AltText,
		})
	}

	return WriteUpDetailResponse{
		WriteUpSummaryResponse: getWriteUpSummary(writeup, true),
		MachineIP:              writeup.MachineIP,
		MachineURL:             writeup.MachineURL,
		Content:                writeup.Content,
		UpdatedAt:              writeup.UpdatedAt,
		Images:                 images,
	}
}

type CategoryResponse struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Description   string `json:"description"`
	Color         string `json:"color"`
	Icon          string `json:"icon"`
	WriteupsCount int64  `json:"writeups_count"`
}

func GetCategoriesResponse(categories []repository.CategoryWithCount) []CategoryResponse {
	data := make([]CategoryResponse, 0, len(categories))

	for _, category := range categories {
		data = append(data, CategoryResponse{
			ID:            category.ID,
			Name:          category.Name,
			Slug:          category.Slug,
			Description:   category.Description,
			Color:         category.Color,
			Icon:          category.Icon,
			WriteupsCount: category.WriteupsCount,
		})
	}

	return data
}

type TagResponse struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	WriteupsCount int64  `json:"writeups_count"`
}

func GetTagsResponse(tags []repository.TagWithCount) []TagResponse {
	data := make([]TagResponse, 0, len(tags))

	for _, tag := range tags {
		data = append(data, TagResponse{
			ID:            tag.ID,
			Name:          tag.Name,
			Slug:          tag.Slug,
			WriteupsCount: tag.WriteupsCount,
		})
	}

	return data
}

type ToolResponse struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	OfficialURL string `json:"official_url"`
	GithubURL   string `json:"github_url"`
	Icon        string `json:"icon"`
	IsFree      bool   `json:"is_free"`
}

func GetToolsResponse(tools []database.Tool) []ToolResponse {
	data := make([]ToolResponse, 0, len(tools))

	for _, tool := range tools {
		data = append(data, ToolResponse{
			ID:          tool.ID,
			Name:        tool.Name,
			Description: tool.Description,
			Category:    tool.Category,
			OfficialURL: tool.OfficialURL,
			GithubURL:   tool.GithubURL,
			Icon:        tool.Icon,
			IsFree:      tool.IsFree,
		})
	}

	return data
}
