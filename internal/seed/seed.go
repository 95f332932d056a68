// Package seed holds the demo data every list starts from.  The data is
// rebuilt on each call so callers may mutate what they receive.
package seed

import (
	"github.com/iliyamo/school-admin/internal/model"
	"github.com/iliyamo/school-admin/internal/richtext"
	"github.com/iliyamo/school-admin/internal/utils"
)

// Accounts returns the three demo logins, one per role.
func Accounts() []model.Account {
	return []model.Account{
		{
			ID:          "1",
			Name:        "System Admin",
			Email:       "admin@schooldemo.com",
			Password:    "Admin@123",
			Role:        model.RoleSystemAdmin,
			Description: "Full oversight of staff, content, and admissions",
		},
		{
			ID:          "2",
			Name:        "Content Editor",
			Email:       "editor@schooldemo.com",
			Password:    "Editor@123",
			Role:        model.RoleContentEditor,
			Description: "Manage blogs, events, gallery, and achievements",
		},
		{
			ID:          "3",
			Name:        "Admissions Viewer",
			Email:       "admissions@schooldemo.com",
			Password:    "Admissions@123",
			Role:        model.RoleAdmissionsViewer,
			Description: "Read-only access to admission applications",
		},
	}
}

func Events() []model.Event {
	return []model.Event{
		{ID: "1", Title: "Annual Day 2024", Description: "Grand celebration of school culture", Date: "2024-12-20", Status: model.StatusUpcoming},
		{ID: "2", Title: "Science Exhibition", Description: "Innovative projects by students", Date: "2024-05-15", Status: model.StatusPast},
		{ID: "3", Title: "Sports Meet", Description: "Inter-house athletic competition", Date: "2024-11-10", Status: model.StatusOngoing},
	}
}

func Achievements() []model.Achievement {
	return []model.Achievement{
		{
			ID:              "1",
			StudentName:     "Aarav Sharma",
			ClassSection:    "10th B",
			Category:        model.CategoryAcademic,
			Title:           "State Merit List",
			CompetitionName: "SSC Board Exams",
			Year:            "2024",
			Rank:            "1st",
			Description:     "Secured 98.5% in State Board Examinations.",
			IsFeatured:      true,
			IsActive:        true,
			PhotoURL:        "https://images.unsplash.com/photo-1543269865-cbf427effbad?q=80&w=400&h=400&fit=crop",
		},
		{
			ID:              "2",
			StudentName:     "Priya Patel",
			ClassSection:    "8th A",
			Category:        model.CategorySports,
			Title:           "National Gold Medal",
			CompetitionName: "U-14 Athletics",
			Year:            "2023",
			Rank:            "Gold",
			Description:     "Won gold in 100m sprint.",
			IsFeatured:      true,
			IsActive:        true,
			PhotoURL:        "https://images.unsplash.com/photo-1526676037777-05a232554f77?q=80&w=400&h=400&fit=crop",
		},
	}
}

func Blogs() []model.BlogPost {
	post := model.BlogPost{
		ID:                   "1",
		Title:                "The Future of STEM Education",
		Excerpt:              "Exploring how technology integration is reshaping the classroom experience for students.",
		PublishDate:          "2024-03-01",
		AuthorName:           "Dr. Sarah Smith",
		AuthorRole:           "Science Head",
		Category:             "Education",
		AdditionalCategories: []string{"Technology", "STEM"},
		ReadTime:             "5 min",
		CoverImageURL:        "https://images.unsplash.com/photo-1509062522246-3755977927d7?q=80&w=2070&auto=format&fit=crop",
		Content:              "Teaching science in the modern age requires a focus on interdisciplinary approaches...",
		IsPublished:          true,
	}
	post.Slug = utils.Slugify(post.Title)
	post.Paragraphs = richtext.Paragraphs(post.Content)
	return []model.BlogPost{post}
}

func Gallery() []model.GalleryImage {
	const q = "?q=80&w=800&auto=format&fit=crop"
	img := func(id, photo, category string) model.GalleryImage {
		return model.GalleryImage{ID: id, URL: "https://images.unsplash.com/" + photo + q, Category: category}
	}
	return []model.GalleryImage{
		img("c1", "photo-1541339907198-e08756ebafe3", "Campus"),
		img("c2", "photo-1523050854058-8df90110c9f1", "Campus"),
		img("c3", "photo-1497633762265-9d179a990aa6", "Campus"),
		img("cl1", "photo-1427504494785-3a9ca7044f45", "Academics"),
		img("cl2", "photo-1503676260728-1c00da094a0b", "Academics"),
		img("s1", "photo-1517649763962-0c623066013b", "Sports"),
		img("s2", "photo-1526676037777-05a232554f77", "Sports"),
		img("s3", "photo-1461896836934-ffe607ba8211", "Sports"),
		img("cp1", "photo-1492684223066-81342ee5ff30", "Events"),
		img("cp2", "photo-1514525253361-bee8718a300a", "Events"),
		img("ad1", "photo-1501281668745-f7f57925c3b4", "Events"),
		img("ad2", "photo-1533174072545-7a4b6ad7a6c3", "Events"),
	}
}

func Admissions() []model.AdmissionSubmission {
	return []model.AdmissionSubmission{
		{
			ID:          "1",
			StudentName: "Rohan Mehta",
			ParentName:  "Sanjay Mehta",
			Grade:       "Grade 5",
			Email:       "sanjay@example.com",
			Phone:       "9876543210",
			SubmittedAt: "2024-03-10T10:30:00Z",
			Status:      "New",
			Details: map[string]string{
				"gender":         "Male",
				"dob":            "2014-05-12",
				"previousSchool": "Sunrise Public School",
				"relationship":   "Father",
				"occupation":     "Software Engineer",
				"address":        "123 Main St, Near Bridge",
				"city":           "Honnavar",
				"state":          "Karnataka",
				"pincode":        "581334",
				"remarks":        "Rohan is very keen on sports and coding.",
			},
		},
		{
			ID:          "2",
			StudentName: "Ananya Iyer",
			ParentName:  "Lakshmi Iyer",
			Grade:       "Grade 1",
			Email:       "lakshmi.i@example.com",
			Phone:       "9845012345",
			SubmittedAt: "2024-03-11T09:15:00Z",
			Status:      "New",
			Details: map[string]string{
				"gender":         "Female",
				"dob":            "2018-08-22",
				"previousSchool": "Little Angels Playhome",
				"relationship":   "Mother",
				"occupation":     "Architect",
				"address":        "Flat 402, Green Meadows",
				"city":           "Honnavar",
				"state":          "Karnataka",
				"pincode":        "581334",
				"remarks":        "She enjoys painting and storytelling.",
			},
		},
	}
}

// Staff starts empty; members are added through the panel.
func Staff() []model.Staff { return []model.Staff{} }

func Hero() model.HeroConfig {
	return model.HeroConfig{
		Heading:            "Academic Excellence Starts Here",
		Subtext:            "Our departments are constantly evolving to provide students with the tools they need for a digital future.",
		BackgroundImageURL: "https://images.unsplash.com/photo-1523050854058-8df90110c9f1?q=80&w=2070&auto=format&fit=crop",
	}
}
