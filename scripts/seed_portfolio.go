package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

type seedSkill struct {
	name        string
	proficiency int
	category    string
}

type seedProject struct {
	title       string
	description string
	githubLink  string
	liveLink    string
	skills      []string
}

type seedWork struct {
	company     string
	position    string
	description string
	startDate   string
	endDate     *string
	current     bool
}

func strPtr(s string) *string { return &s }

func main() {
	fmt.Println("seeding portfolio data...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	DSN := os.Getenv("DB_DSN")

	pool, err := pgxpool.New(context.Background(), DSN)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()

	// Wipe in dependency order so reseeding is repeatable.
	for _, table := range []string{"project_skills", "projects", "skills", "work_experience", "profile"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Fatalf("cannot clear %s: %v", table, err)
		}
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO profile (name, email, education, github, linkedin, portfolio)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		"John Doe",
		"john.doe@example.com",
		"Bachelor of Science in Computer Science, University of Technology",
		"https://github.com/johndoe",
		"https://linkedin.com/in/johndoe",
		"https://johndoe.dev",
	)
	if err != nil {
		log.Fatalf("cannot seed profile: %v", err)
	}

	skills := []seedSkill{
		{"JavaScript", 5, "Frontend"},
		{"Python", 4, "Backend"},
		{"React", 5, "Frontend"},
		{"Node.js", 4, "Backend"},
		{"SQL", 4, "Database"},
		{"MongoDB", 3, "Database"},
		{"Docker", 3, "DevOps"},
		{"Git", 5, "Tools"},
		{"TypeScript", 4, "Frontend"},
		{"Express.js", 4, "Backend"},
	}
	skillIDs := make(map[string]int64, len(skills))
	for _, s := range skills {
		var id int64
		err := pool.QueryRow(ctx,
			"INSERT INTO skills (name, proficiency, category) VALUES ($1, $2, $3) RETURNING id",
			s.name, s.proficiency, s.category,
		).Scan(&id)
		if err != nil {
			log.Fatalf("cannot seed skill '%s': %v", s.name, err)
		}
		skillIDs[s.name] = id
	}

	projects := []seedProject{
		{
			title:       "E-Commerce Platform",
			description: "A full-stack e-commerce application built with React, Node.js, and MongoDB. Features include user authentication, product management, shopping cart, and payment integration.",
			githubLink:  "https://github.com/johndoe/ecommerce-platform",
			liveLink:    "https://ecommerce-demo.johndoe.dev",
			skills:      []string{"React", "Node.js", "MongoDB", "JavaScript"},
		},
		{
			title:       "Task Management App",
			description: "A collaborative task management application with real-time updates, drag-and-drop functionality, and team collaboration features.",
			githubLink:  "https://github.com/johndoe/task-manager",
			liveLink:    "https://tasks.johndoe.dev",
			skills:      []string{"TypeScript", "React", "Express.js"},
		},
		{
			title:       "Weather Dashboard",
			description: "A weather application that displays current weather conditions and forecasts using OpenWeatherMap API with beautiful visualizations.",
			githubLink:  "https://github.com/johndoe/weather-dashboard",
			liveLink:    "https://weather.johndoe.dev",
			skills:      []string{"JavaScript", "React"},
		},
		{
			title:       "Portfolio Website",
			description: "A responsive portfolio website built with modern web technologies showcasing projects and skills.",
			githubLink:  "https://github.com/johndoe/portfolio",
			liveLink:    "https://johndoe.dev",
			skills:      []string{"JavaScript", "React", "Git"},
		},
	}
	for _, p := range projects {
		var id int64
		err := pool.QueryRow(ctx,
			"INSERT INTO projects (title, description, github_link, live_link) VALUES ($1, $2, $3, $4) RETURNING id",
			p.title, p.description, p.githubLink, p.liveLink,
		).Scan(&id)
		if err != nil {
			log.Fatalf("cannot seed project '%s': %v", p.title, err)
		}
		for _, name := range p.skills {
			_, err := pool.Exec(ctx,
				"INSERT INTO project_skills (project_id, skill_id) VALUES ($1, $2)",
				id, skillIDs[name],
			)
			if err != nil {
				log.Fatalf("cannot link project '%s' to skill '%s': %v", p.title, name, err)
			}
		}
	}

	experiences := []seedWork{
		{
			company:     "Tech Solutions Inc.",
			position:    "Senior Full Stack Developer",
			description: "Led development of multiple web applications, mentored junior developers, and implemented best practices for code quality and testing.",
			startDate:   "2022-01-01",
			endDate:     nil,
			current:     true,
		},
		{
			company:     "Digital Innovations Ltd.",
			position:    "Frontend Developer",
			description: "Developed responsive user interfaces using React and modern CSS frameworks, collaborated with design team to implement pixel-perfect designs.",
			startDate:   "2020-06-01",
			endDate:     strPtr("2021-12-31"),
			current:     false,
		},
		{
			company:     "StartupXYZ",
			position:    "Junior Developer",
			description: "Built and maintained various web applications, learned modern development practices and technologies.",
			startDate:   "2019-01-01",
			endDate:     strPtr("2020-05-31"),
			current:     false,
		},
	}
	for _, w := range experiences {
		_, err := pool.Exec(ctx,
			`INSERT INTO work_experience (company, position, description, start_date, end_date, current)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			w.company, w.position, w.description, w.startDate, w.endDate, w.current,
		)
		if err != nil {
			log.Fatalf("cannot seed experience at '%s': %v", w.company, err)
		}
	}

	fmt.Println("seeded portfolio data successfully!")
}
