package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultProfile is the profile a fresh session starts with.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:        "Jamie Doe",
		CurrentRole: "Software Engineer",
		Industry:    "Technology",
		Expertise:   "React, Node.js, AI",
		Interests:   "Machine Learning, Web Development, Open Source",
		Company:     "TechCorp Inc.",
	}
}

// SampleContacts returns a fresh copy of the demo contact set. Each call mints
// new IDs so a reseeded session never aliases a previous one.
func SampleContacts() []Contact {
	now := time.Now().UTC()
	return []Contact{
		{
			ID:                uuid.NewString(),
			FirstName:         "Jordan",
			LastName:          "Smith",
			Role:              "Product Manager",
			Industry:          "Technology",
			Company:           "InnovateTech",
			Expertise:         "Product Strategy, UX, Agile",
			Seniority:         SenioritySenior,
			CompanySize:       "Enterprise",
			ActivityLevel:     ActivityHigh,
			RecentProjects:    "AI Product Launch, Platform Redesign",
			KeyAchievements:   "Grew user base by 200%",
			RecentActivity:    &RecentActivity{Type: "post", Topic: "AI ethics", Date: now.AddDate(0, 0, -3)},
			MutualConnections: 3,
		},
		{
			ID:                uuid.NewString(),
			FirstName:         "Taylor",
			LastName:          "Wong",
			Role:              "Engineering Director",
			Industry:          "Software",
			Company:           "CodeCorp",
			Expertise:         "Cloud Architecture, Microservices, DevOps",
			Seniority:         SeniorityDirector,
			CompanySize:       "Mid-size",
			ActivityLevel:     ActivityMedium,
			RecentProjects:    "Microservices Migration, CI/CD Pipeline",
			KeyAchievements:   "Reduced infrastructure costs by 40%",
			RecentActivity:    &RecentActivity{Type: "article", Topic: "serverless architecture", Date: now.AddDate(0, 0, -10)},
			MutualConnections: 1,
		},
		{
			ID:                uuid.NewString(),
			FirstName:         "Alex",
			LastName:          "Johnson",
			Role:              "Marketing Manager",
			Industry:          "E-commerce",
			Company:           "ShopDirect",
			Expertise:         "Growth Marketing, SEO, Analytics",
			Seniority:         SeniorityManager,
			CompanySize:       "Startup",
			ActivityLevel:     ActivityHigh,
			RecentProjects:    "Influencer Campaign, Content Strategy",
			KeyAchievements:   "Doubled conversion rate in 3 months",
			RecentActivity:    &RecentActivity{Type: "post", Topic: "conversion optimization", Date: now.AddDate(0, 0, -5)},
			MutualConnections: 0,
		},
		{
			ID:                uuid.NewString(),
			FirstName:         "Morgan",
			LastName:          "Lee",
			Role:              "Data Scientist",
			Industry:          "Finance",
			Company:           "DataBank",
			Expertise:         "Predictive Analytics, Machine Learning, Python",
			Seniority:         SenioritySenior,
			CompanySize:       "Large",
			ActivityLevel:     ActivityMedium,
			RecentProjects:    "Fraud Detection System, Risk Modeling",
			KeyAchievements:   "Reduced false positives by 75%",
			RecentActivity:    &RecentActivity{Type: "article", Topic: "ML in finance", Date: now.AddDate(0, 0, -15)},
			MutualConnections: 2,
		},
		{
			ID:                uuid.NewString(),
			FirstName:         "Casey",
			LastName:          "Rivera",
			Role:              "UX Designer",
			Industry:          "Technology",
			Company:           "DesignWorks",
			Expertise:         "User Research, Interaction Design, Prototyping",
			Seniority:         SeniorityMid,
			CompanySize:       "Agency",
			ActivityLevel:     ActivityHigh,
			RecentProjects:    "Mobile App Redesign, Design System",
			KeyAchievements:   "Increased user engagement by 150%",
			RecentActivity:    &RecentActivity{Type: "post", Topic: "inclusive design", Date: now.AddDate(0, 0, -2)},
			MutualConnections: 5,
		},
	}
}
