package model

// Portfolio is the single editable content document backing the site.
// Exactly one instance exists; it is created lazily with defaults on the
// first read and from then on only updated section by section.
type Portfolio struct {
	Hero       Hero         `json:"hero"`
	Skills     Skills       `json:"skills"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Projects   []Project    `json:"projects"`
	Settings   Settings     `json:"settings"`
}

// Hero is the landing section of the public site.
type Hero struct {
	Name           string `json:"name"`
	Role           string `json:"role"`
	Subtitle       string `json:"subtitle"`
	WelcomeMessage string `json:"welcomeMessage"`
	Image          string `json:"image"`
}

// Skills holds ordered skill names per category. Duplicates are allowed.
type Skills struct {
	Frontend []string `json:"frontend"`
	Backend  []string `json:"backend"`
	Tools    []string `json:"tools"`
}

// Education is one entry in the education list. ID is unique within the
// list and never reused after deletion.
type Education struct {
	ID          int64  `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

// Experience is one entry in the work-experience list.
type Experience struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Period           string   `json:"period"`
	Responsibilities []string `json:"responsibilities"`
}

// Project is one showcased project.
type Project struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	TechStack   []string `json:"techStack"`
	LiveURL     string   `json:"liveUrl"`
	GithubURL   string   `json:"githubUrl"`
}

// Settings holds site-wide presentation settings.
type Settings struct {
	TabName  string          `json:"tabName"`
	TabImage string          `json:"tabImage"`
	LogoText string          `json:"logoText"`
	CvURL    string          `json:"cvUrl"`
	Contact  ContactSettings `json:"contact"`
	Social   SocialSettings  `json:"social"`
}

// ContactSettings is the contact block shown in the site footer.
type ContactSettings struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SocialSettings holds external profile links.
type SocialSettings struct {
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
}

// DefaultPortfolio returns the document persisted when the site is read
// before an admin has entered any content.
func DefaultPortfolio() *Portfolio {
	return &Portfolio{
		Hero: Hero{
			Name:           "Your Name",
			Role:           "Your Role",
			Subtitle:       "Your Subtitle",
			WelcomeMessage: "Welcome to my portfolio",
			Image:          "/placeholder-hero.svg",
		},
		Skills:     Skills{Frontend: []string{}, Backend: []string{}, Tools: []string{}},
		Education:  []Education{},
		Experience: []Experience{},
		Projects:   []Project{},
		Settings:   DefaultSettings(),
	}
}

// DefaultSettings returns the settings block used until the admin edits it.
func DefaultSettings() Settings {
	return Settings{
		TabName:  "My Portfolio",
		TabImage: "/placeholder-logo.svg",
		LogoText: "Portfolio",
		CvURL:    "",
		Contact: ContactSettings{
			Email:   "contact@example.com",
			Phone:   "+1 234 567 890",
			Address: "City, Country",
		},
		Social: SocialSettings{
			Github:   "https://github.com",
			Linkedin: "https://linkedin.com",
		},
	}
}
