package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/database/repository"
	"github.com/Matias-sh/mi-portafolio/database/repository/queries"
	"github.com/Matias-sh/mi-portafolio/handler/payload"
	"github.com/Matias-sh/mi-portafolio/pkg/endpoint"
)

type ProfileHandler struct {
	Profiles *repository.Profiles
}

func NewProfileHandler(profiles *repository.Profiles) ProfileHandler {
	return ProfileHandler{Profiles: profiles}
}

func (h ProfileHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	profile, err := h.Profiles.Current()

	if errors.Is(err, database.ErrNotFound) {
		return endpoint.NotFound("Profile not found")
	}

	if err != nil {
		return endpoint.LogInternalError("could not fetch the profile", err)
	}

	respondCached(w, r, payload.GetProfileResponse(*profile))

	return nil
}

type SkillsHandler struct {
	Skills *repository.Skills
}

func NewSkillsHandler(skills *repository.Skills) SkillsHandler {
	return SkillsHandler{Skills: skills}
}

func (h SkillsHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	skills, err := h.Skills.All()
	if err != nil {
		return endpoint.LogInternalError("could not fetch skills", err)
	}

	respondCached(w, r, payload.GetSkillsResponse(skills))

	return nil
}

type ExperienceHandler struct {
	Experiences *repository.Experiences
}

func NewExperienceHandler(experiences *repository.Experiences) ExperienceHandler {
	return ExperienceHandler{Experiences: experiences}
}

func (h ExperienceHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	items, err := h.Experiences.All()
	if err != nil {
		return endpoint.LogInternalError("could not fetch experience", err)
	}

	respondCached(w, r, payload.GetExperienceResponse(items))

	return nil
}

type ProjectsHandler struct {
	Projects *repository.Projects
}

func NewProjectsHandler(projects *repository.Projects) ProjectsHandler {
	return ProjectsHandler{Projects: projects}
}

func (h ProjectsHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	filters := queries.ProjectFilters{Featured: r.URL.Query().Get("featured")}

	projects, err := h.Projects.Active(filters)
	if err != nil {
		return endpoint.LogInternalError("could not fetch projects", err)
	}

	respondCached(w, r, payload.GetProjectsResponse(projects))

	return nil
}

func (h ProjectsHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	slug := r.PathValue("slug")

	project, err := h.Projects.FindActiveBy(slug)

	if errors.Is(err, database.ErrNotFound) {
		return endpoint.NotFound("Project not found")
	}

	if err != nil {
		return endpoint.LogInternalError("could not fetch the project", err)
	}

	respondCached(w, r, payload.GetProjectDetailResponse(*project))

	return nil
}

type CertificationsHandler struct {
	Certifications *repository.Certifications
}

func NewCertificationsHandler(certifications *repository.Certifications) CertificationsHandler {
	return CertificationsHandler{Certifications: certifications}
}

func (h CertificationsHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	items, err := h.Certifications.All()
	if err != nil {
		return endpoint.LogInternalError("could not fetch certifications", err)
	}

	respondCached(w, r, payload.GetCertificationsResponse(items))

	return nil
}

// respondCached only logs encoding failures: the status line is already out.
func respondCached(w http.ResponseWriter, r *http.Request, data any) {
	if err := endpoint.NewResponseFrom(w, r).RespondCached(data); err != nil {
		slog.Error("failed to encode response", "path", r.URL.Path, "err", err)
	}
}
