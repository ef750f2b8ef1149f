package service

import "github.com/saicharan1203/portfolio-backend/internal/portfolio/domain"

func ptr(s string) *string { return &s }

// seedProjects and seedSkills are the sample catalog inserted into an empty store.
var seedProjects = []domain.InsertProject{
	{
		Title:       "FinFraudX",
		Description: "An AI-powered fraud detection platform that uses machine learning to identify suspicious transactions in real-time. Featuring a modern glassmorphism UI with interactive dashboards, risk calculators, and multi-layer security verification.",
		ImageURL:    ptr("https://images.unsplash.com/photo-1563986768609-322da13575f3?w=800&q=80"),
		Tags:        []string{"React", "Python", "AI", "Fraud Detection"},
		ProjectURL:  ptr("https://github.com/saicharan1203/FinFraudX"),
		GithubURL:   ptr("https://github.com/saicharan1203/FinFraudX"),
	},
	{
		Title:       "CareerVista-AI",
		Description: "A scalable web platform for real-time career guidance recommendations. Built with RESTful APIs to handle user data, real-time exam info, and recommendation logic.",
		ImageURL:    ptr("https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?w=800&q=80"),
		Tags:        []string{"Python", "Flask", "React", "MongoDB"},
	},
	{
		Title:       "Online Grocery Store",
		Description: "Full-stack e-commerce application with user authentication, product catalog, cart, and order management. Features secure checkout and database-backed inventory.",
		ImageURL:    ptr("https://images.unsplash.com/photo-1542838132-92c53300491e?w=800&q=80"),
		Tags:        []string{"Python", "Flask", "SQL", "Auth"},
	},
	{
		Title:       "Facial Expression Recognition System",
		Description: "Real-time emotion analysis system using Flask, DeepFace, and MediaPipe. Designed with privacy features and optimized for social media engagement analysis.",
		ImageURL:    ptr("https://images.unsplash.com/photo-1485796826113-174aa68fd81b?w=800&q=80"),
		Tags:        []string{"Python", "Flask", "DeepFace", "MediaPipe"},
	},
	{
		Title:       "Brain Tumor Detection",
		Description: "Deep learning-based detection system using MSCNN and image processing tools like OpenCV and MATLAB. Improved accuracy for medical image analysis.",
		ImageURL:    ptr("https://images.unsplash.com/photo-1576086213369-97a306d36557?w=800&q=80"),
		Tags:        []string{"Deep Learning", "MSCNN", "OpenCV", "MATLAB"},
	},
	{
		Title:       "AI Student Performance Tracker",
		Description: "Power BI dashboard integrated with AI models to predict students at risk of low performance. Helps institutions make data-driven decisions.",
		ImageURL:    ptr("https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&q=80"),
		Tags:        []string{"Power BI", "AI", "Data Science"},
	},
}

var seedSkills = []domain.InsertSkill{
	{Name: "Python", Category: "Backend", Proficiency: 90},
	{Name: "SQL", Category: "Backend", Proficiency: 85},
	{Name: "Machine Learning", Category: "AI/ML", Proficiency: 80},
	{Name: "Power BI", Category: "Tools", Proficiency: 85},
	{Name: "Excel", Category: "Tools", Proficiency: 90},
	{Name: "Flask", Category: "Backend", Proficiency: 85},
	{Name: "React", Category: "Frontend", Proficiency: 75},
	{Name: "HTML/CSS", Category: "Frontend", Proficiency: 80},
	{Name: "Java", Category: "Backend", Proficiency: 70},
	{Name: "OpenCV", Category: "AI/ML", Proficiency: 75},
	{Name: "TensorFlow", Category: "AI/ML", Proficiency: 70},
	{Name: "PyTorch", Category: "AI/ML", Proficiency: 65},
}
