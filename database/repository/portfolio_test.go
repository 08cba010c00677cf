package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/database/repository"
	"github.com/Matias-sh/mi-portafolio/database/repository/queries"
	"gorm.io/datatypes"
)

func TestProfilesCurrent(t *testing.T) {
	conn := newConnection(t)
	repo := repository.Profiles{DB: conn}

	if _, err := repo.Current(); !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("expected not found on empty table, got %v", err)
	}

	mustCreate(t, conn, &database.Profile{Name: "First", Title: "t", Bio: "b", Email: "a@b.com"})
	mustCreate(t, conn, &database.Profile{Name: "Second", Title: "t", Bio: "b", Email: "c@d.com"})

	profile, err := repo.Current()
	if err != nil {
		t.Fatalf("current: %v", err)
	}

	if profile.Name != "First" {
		t.Fatalf("expected lowest id profile, got %s", profile.Name)
	}

	if n, err := repo.Count(); err != nil || n != 2 {
		t.Fatalf("count: %d %v", n, err)
	}
}

func TestSkillsOrdering(t *testing.T) {
	conn := newConnection(t)
	repo := repository.Skills{DB: conn}

	err := repo.CreateMany([]database.Skill{
		{Name: "Python", Category: "backend", Proficiency: 85},
		{Name: "Burp Suite", Category: "pentesting", Proficiency: 90},
		{Name: "Android", Category: "mobile", Proficiency: 85},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	skills, err := repo.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}

	got := []string{skills[0].Name, skills[1].Name, skills[2].Name}
	want := []string{"Burp Suite", "Android", "Python"}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestExperiencesOrdering(t *testing.T) {
	conn := newConnection(t)
	repo := repository.Experiences{DB: conn}

	older := datatypes.Date(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := datatypes.Date(time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC))

	err := repo.CreateMany([]database.Experience{
		{Company: "Old Co", Position: "Dev", StartDate: older, Description: "d", Technologies: "Go"},
		{Company: "New Co", Position: "Pentester", StartDate: newer, Current: true, Description: "d", Technologies: "Burp"},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	items, err := repo.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}

	if len(items) != 2 || items[0].Company != "New Co" {
		t.Fatalf("expected newest first, got %+v", items)
	}
}

func TestProjectsHideInactive(t *testing.T) {
	conn := newConnection(t)
	repo := repository.Projects{DB: conn}

	mustCreate(t, conn, &database.Project{Title: "Visible", ProjectType: "web", Description: "d", Technologies: "Go", IsActive: true})
	mustCreate(t, conn, &database.Project{Title: "Hidden", ProjectType: "web", Description: "d", Technologies: "Go", IsActive: false})

	items, err := repo.Active(queries.ProjectFilters{})
	if err != nil {
		t.Fatalf("active: %v", err)
	}

	if len(items) != 1 || items[0].Slug != "visible" {
		t.Fatalf("expected only the active project, got %+v", items)
	}

	if _, err := repo.FindActiveBy("hidden"); !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("inactive project must not be found, got %v", err)
	}

	if _, err := repo.FindActiveBy("VISIBLE"); !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("slugs match exactly, got %v", err)
	}

	if p, err := repo.FindActiveBy("visible"); err != nil || p.Title != "Visible" {
		t.Fatalf("expected active project by slug, got %v", err)
	}
}

func TestProjectsFeaturedAndOrdering(t *testing.T) {
	conn := newConnection(t)
	repo := repository.Projects{DB: conn}

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mustCreate(t, conn, &database.Project{Title: "A", ProjectType: "web", Description: "d", Technologies: "Go", IsActive: true, IsFeatured: true, CreatedAt: base})
	mustCreate(t, conn, &database.Project{Title: "B", ProjectType: "web", Description: "d", Technologies: "Go", IsActive: true, CreatedAt: base.Add(time.Hour)})
	mustCreate(t, conn, &database.Project{Title: "C", ProjectType: "lab", Description: "d", Technologies: "Go", IsActive: true, IsFeatured: true, CreatedAt: base.Add(2 * time.Hour)})

	all, err := repo.Active(queries.ProjectFilters{Featured: "nope"})
	if err != nil {
		t.Fatalf("active: %v", err)
	}

	if len(all) != 3 || all[0].Title != "C" || all[2].Title != "A" {
		t.Fatalf("expected created_at desc, got %+v", all)
	}

	featured, err := repo.Active(queries.ProjectFilters{Featured: "TRUE"})
	if err != nil {
		t.Fatalf("featured: %v", err)
	}

	if len(featured) != 2 || featured[0].Title != "C" || featured[1].Title != "A" {
		t.Fatalf("unexpected featured list %+v", featured)
	}
}

func TestCertificationsUndatedLast(t *testing.T) {
	conn := newConnection(t)
	repo := repository.Certifications{DB: conn}

	d1 := datatypes.Date(time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC))
	d2 := datatypes.Date(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	err := repo.CreateMany([]database.Certification{
		{Name: "Undated", Issuer: "X"},
		{Name: "Old", Issuer: "X", IssueDate: &d1},
		{Name: "New", Issuer: "X", IssueDate: &d2},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	items, err := repo.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}

	if items[0].Name != "New" || items[1].Name != "Old" || items[2].Name != "Undated" {
		t.Fatalf("unexpected order %s %s %s", items[0].Name, items[1].Name, items[2].Name)
	}
}

func TestContactMessagesCreate(t *testing.T) {
	conn := newConnection(t)
	repo := repository.ContactMessages{DB: conn}

	ip := "10.0.0.1"

	msg, err := repo.Create(database.ContactMessageAttrs{
		Name:      "Ana",
		Email:     "ana@example.com",
		Subject:   "Hola",
		Message:   "Quiero contactarte",
		IPAddress: &ip,
		UserAgent: "curl/8",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if msg.ID == 0 || msg.Read || msg.Replied {
		t.Fatalf("unexpected stored message %+v", msg)
	}

	var stored database.ContactMessage
	if err := conn.Sql().First(&stored, msg.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}

	if stored.IPAddress == nil || *stored.IPAddress != ip {
		t.Fatalf("ip not persisted: %+v", stored)
	}
}

func TestToolsFilterAndOrdering(t *testing.T) {
	conn := newConnection(t)
	repo := repository.Tools{DB: conn}

	err := repo.CreateMany([]database.Tool{
		{Name: "nmap", Description: "d", Category: "recon", IsFree: true},
		{Name: "Burp", Description: "d", Category: "web"},
		{Name: "amass", Description: "d", Category: "recon", IsFree: true},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	all, err := repo.All(queries.ToolFilters{})
	if err != nil {
		t.Fatalf("all: %v", err)
	}

	if len(all) != 3 || all[0].Name != "amass" || all[1].Name != "nmap" || all[2].Name != "Burp" {
		t.Fatalf("unexpected ordering %+v", all)
	}

	recon, err := repo.All(queries.ToolFilters{Category: " recon "})
	if err != nil {
		t.Fatalf("recon: %v", err)
	}

	if len(recon) != 2 {
		t.Fatalf("expected 2 recon tools, got %d", len(recon))
	}
}

func TestAdminUsersCreateOrUpdate(t *testing.T) {
	conn := newConnection(t)
	repo := repository.AdminUsers{DB: conn}

	if _, err := repo.CreateOrUpdate(database.AdminUserAttrs{Username: " "}); !errors.Is(err, database.ErrInvalid) {
		t.Fatalf("expected invalid, got %v", err)
	}

	first, err := repo.CreateOrUpdate(database.AdminUserAttrs{Username: "matias", PasswordHash: "h1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	second, err := repo.CreateOrUpdate(database.AdminUserAttrs{Username: "Matias", PasswordHash: "h2"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if first.ID != second.ID || second.PasswordHash != "h2" {
		t.Fatalf("expected password reset on the same account")
	}

	if repo.FindBy("nobody") != nil {
		t.Fatalf("unknown admin must be nil")
	}
}
