package dao

import (
	"context"

	"github.com/studynotes/storefront.api/models"
)

const imageBase = "https://pub-cdn.sider.ai/u/U0Z6HZJGK2R/web-coder/68aee64d7b28bae49830d951/resource/"

// StaticCatalog serves the built-in storefront listing when no database is
// configured
type StaticCatalog struct {
	Products []models.ProductDB
}

// NewStaticCatalog returns a catalog holding a copy of the default listing
func NewStaticCatalog() *StaticCatalog {
	products := make([]models.ProductDB, len(defaultProducts))
	copy(products, defaultProducts)
	return &StaticCatalog{Products: products}
}

// GetProduct returns the product with the given id, or nil when there is none
func (s *StaticCatalog) GetProduct(_ context.Context, id string) (*models.ProductDB, error) {
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, nil
}

// ListProducts returns every product in display order
func (s *StaticCatalog) ListProducts(_ context.Context) ([]models.ProductDB, error) {
	products := make([]models.ProductDB, len(s.Products))
	copy(products, s.Products)
	return products, nil
}

var defaultProducts = []models.ProductDB{
	{
		ID:          "1",
		Position:    1,
		Title:       "Complete JavaScript Notes for Beginners",
		Description: "Comprehensive JavaScript notes covering all fundamental concepts, syntax, and practical examples. Perfect for beginners and interview preparation.",
		Price:       "299",
		Category:    "Programming",
		Tags:        []string{"JavaScript", "ES6", "DOM", "Async", "Interview"},
		Type:        "course",
		Level:       "Beginner",
		Format:      "PDF",
		Pages:       150,
		Image:       imageBase + "4e70453d-fad9-41ba-ab71-8ed7de2c30a3.jpg",
		Featured:    true,
	},
	{
		ID:          "2",
		Position:    2,
		Title:       "Data Structures & Algorithms Handbook",
		Description: "Detailed notes on data structures, algorithms, and problem-solving techniques. Includes diagrams, examples, and practice problems.",
		Price:       "499",
		Category:    "Computer Science",
		Tags:        []string{"Algorithms", "Data Structures", "Complexity", "Trees"},
		Type:        "course",
		Level:       "Intermediate",
		Format:      "PDF",
		Pages:       200,
		Image:       imageBase + "cff95f0b-01c3-4ca5-8e7c-c79b019e4478.jpg",
		Featured:    true,
	},
	{
		ID:          "3",
		Position:    3,
		Title:       "Business Management Study Guide",
		Description: "Complete study guide for business management covering marketing, finance, operations, and strategic planning. Includes case studies and examples.",
		Price:       "399",
		Category:    "Business",
		Tags:        []string{"Management", "Marketing", "Finance", "Strategy"},
		Type:        "course",
		Level:       "Beginner",
		Format:      "DOC",
		Pages:       120,
		Image:       imageBase + "cb01b4b7-e48f-4b21-9d9c-81a61e713966.jpg",
	},
	{
		ID:          "4",
		Position:    4,
		Title:       "Physics Formula Sheet & Concepts",
		Description: "Essential physics formulas, concepts, and derivations for competitive exams. Well-organized and easy to understand.",
		Price:       "199",
		Category:    "Science",
		Tags:        []string{"Physics", "Formulas", "Mechanics", "Thermodynamics"},
		Type:        "course",
		Level:       "Intermediate",
		Format:      "PDF",
		Pages:       80,
		Image:       imageBase + "daac2c0f-d147-4ba3-9c08-785d77b59867.jpg",
	},
	{
		ID:          "5",
		Position:    5,
		Title:       "Advanced React Development Notes",
		Description: "In-depth React notes covering hooks, context API, performance optimization, and best practices. Includes project examples.",
		Price:       "599",
		Category:    "Programming",
		Tags:        []string{"React", "Hooks", "Redux", "Performance"},
		Type:        "course",
		Level:       "Advanced",
		Format:      "PDF",
		Pages:       180,
		Image:       imageBase + "1ae53984-4f4e-453d-8edc-d37d276715fd.jpg",
	},
	{
		ID:          "6",
		Position:    6,
		Title:       "Mathematics Quick Revision Notes",
		Description: "Quick revision notes for mathematics covering calculus, algebra, geometry, and statistics. Perfect for exam preparation.",
		Price:       "249",
		Category:    "Mathematics",
		Tags:        []string{"Calculus", "Algebra", "Geometry", "Statistics"},
		Type:        "course",
		Level:       "Beginner",
		Format:      "PDF",
		Pages:       100,
		Image:       imageBase + "ef4a4975-10c9-48ef-ace4-718f90896038.jpg",
	},
	{
		ID:          "7",
		Position:    7,
		Title:       "Digital Marketing Strategy Guide",
		Description: "Comprehensive digital marketing notes covering SEO, social media, content marketing, and analytics. Includes real-world examples.",
		Price:       "449",
		Category:    "Marketing",
		Tags:        []string{"SEO", "Social Media", "Content", "Analytics"},
		Type:        "course",
		Level:       "Intermediate",
		Format:      "PPT",
		Pages:       140,
		Image:       imageBase + "eac7598a-44e4-44de-beb0-53d5a0c38368.jpg",
	},
	{
		ID:          "8",
		Position:    8,
		Title:       "Machine Learning Fundamentals",
		Description: "Introduction to machine learning concepts, algorithms, and applications. Includes Python examples and datasets.",
		Price:       "699",
		Category:    "Computer Science",
		Tags:        []string{"Machine Learning", "Python", "Algorithms", "Data Science"},
		Type:        "course",
		Level:       "Advanced",
		Format:      "PDF",
		Pages:       250,
		Image:       imageBase + "f0ab8f20-c99e-41dc-a15a-021f20311949.jpg",
		Featured:    true,
	},
}
