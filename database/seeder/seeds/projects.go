package seeds

import (
	"fmt"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/pkg/gorm"
)

type ProjectsSeed struct {
	db *database.Connection
}

func MakeProjectsSeed(db *database.Connection) *ProjectsSeed {
	return &ProjectsSeed{
		db: db,
	}
}

func (s ProjectsSeed) Create() ([]database.Project, error) {
	projects := []database.Project{
		{
			Title:       "VulnScan Pro",
			Slug:        "vulnscan-pro",
			ProjectType: "security",
			Description: "Herramienta automatizada de escaneo de vulnerabilidades web con interfaz moderna.",
			DetailedDescription: `VulnScan Pro es una herramienta completa de pentesting automatizado que combina múltiples técnicas de escaneo para identificar vulnerabilidades en aplicaciones web.

**Características principales:**
• Escaneo automatizado de OWASP Top 10
• Integración con bases de datos de vulnerabilidades (CVE, NVD)
• Reportes detallados en PDF y HTML
• Dashboard interactivo para análisis de resultados
• API REST para integración con otras herramientas
• Soporte para autenticación y sesiones`,
			Technologies: "Python,Django,React,PostgreSQL,Nmap,Celery",
			GithubURL:    "https://github.com/matiasbritez/vulnscan-pro",
			DemoURL:      "https://vulnscan-demo.example.com",
			IsFeatured:   true,
			IsActive:     true,
		},
		{
			Title:       "PetCare Manager",
			Slug:        "petcare-manager",
			ProjectType: "mobile",
			Description: "App móvil para gestión integral de cuidado de mascotas desarrollada con Jetpack Compose.",
			DetailedDescription: `Aplicación móvil completa para el cuidado y gestión de mascotas, desarrollada con las últimas tecnologías de Android.

**Funcionalidades:**
• Perfil completo de mascotas con historial médico
• Recordatorios de vacunas y medicamentos
• Agenda de citas veterinarias
• Seguimiento de peso y crecimiento`,
			Technologies: "Kotlin,Jetpack Compose,Room,Hilt,Retrofit,Maps API",
			GithubURL:    "https://github.com/matiasbritez/petcare-manager",
			LiveURL:      "https://play.google.com/store/apps/petcare",
			IsFeatured:   true,
			IsActive:     true,
		},
		{
			Title:       "CTF Challenges Platform",
			Slug:        "ctf-platform",
			ProjectType: "web",
			Description: "Plataforma web para hosting de competencias CTF con sistema de scoring automático.",
			DetailedDescription: `Plataforma completa para organizar y participar en competencias de Capture The Flag (CTF) con funcionalidades avanzadas de scoring y administración.

**Características:**
• Sistema de usuarios con roles (admin, team, player)
• Categorías de desafíos (Web, Crypto, Forensics, PWN, etc.)
• Scoring dinámico basado en dificultad y tiempo
• Sistema de hints progresivos`,
			Technologies: "Django,Python,React,Docker,PostgreSQL,Redis,WebSockets",
			GithubURL:    "https://github.com/matiasbritez/ctf-platform",
			LiveURL:      "https://ctf.example.com",
			IsFeatured:   true,
			IsActive:     true,
		},
		{
			Title:       "Network Discovery Tool",
			Slug:        "network-discovery",
			ProjectType: "security",
			Description: "Herramienta CLI para descubrimiento y mapeo de redes con detección de servicios.",
			DetailedDescription: `Herramienta de línea de comandos desarrollada en Python para el descubrimiento automático de dispositivos y servicios en redes locales y remotas.

**Funcionalidades:**
• Escaneo de redes con múltiples técnicas (ping, ARP, SYN)
• Detección de servicios y versiones
• Fingerprinting de sistemas operativos
• Exportación en múltiples formatos (JSON, XML, CSV)`,
			Technologies: "Python,Scapy,Threading,JSON,XML",
			GithubURL:    "https://github.com/matiasbritez/network-discovery",
			IsActive:     true,
		},
	}

	result := s.db.Sql().Create(&projects)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("error seeding projects: %s", result.Error)
	}

	return projects, nil
}
