package model

// Patch types describe partial updates to portfolio sections. Nil pointer
// fields (and nil slices) mean "keep the stored value".

// HeroPatch is a partial update to the hero section.
type HeroPatch struct {
	Name           *string `json:"name"`
	Role           *string `json:"role"`
	Subtitle       *string `json:"subtitle"`
	WelcomeMessage *string `json:"welcomeMessage"`
	Image          *string `json:"image"`
}

// SkillsPatch replaces skill categories. A category is replaced only when a
// non-empty list is supplied; empty or absent categories keep their stored
// lists.
type SkillsPatch struct {
	Frontend []string `json:"frontend"`
	Backend  []string `json:"backend"`
	Tools    []string `json:"tools"`
}

// SettingsPatch is a partial update to site settings. The nested contact
// and social blocks are themselves merged field-wise.
type SettingsPatch struct {
	TabName  *string               `json:"tabName"`
	TabImage *string               `json:"tabImage"`
	LogoText *string               `json:"logoText"`
	CvURL    *string               `json:"cvUrl"`
	Contact  *ContactSettingsPatch `json:"contact"`
	Social   *SocialSettingsPatch  `json:"social"`
}

// ContactSettingsPatch is a partial update to the settings contact block.
type ContactSettingsPatch struct {
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// SocialSettingsPatch is a partial update to the settings social block.
type SocialSettingsPatch struct {
	Github   *string `json:"github"`
	Linkedin *string `json:"linkedin"`
}

// EducationPatch is a partial update to one education entry.
type EducationPatch struct {
	Degree      *string `json:"degree"`
	Institution *string `json:"institution"`
	Year        *string `json:"year"`
	Description *string `json:"description"`
}

// ExperiencePatch is a partial update to one experience entry.
type ExperiencePatch struct {
	Title            *string  `json:"title"`
	Company          *string  `json:"company"`
	Period           *string  `json:"period"`
	Responsibilities []string `json:"responsibilities"`
}

// ProjectPatch is a partial update to one project entry.
type ProjectPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	TechStack   []string `json:"techStack"`
	LiveURL     *string  `json:"liveUrl"`
	GithubURL   *string  `json:"githubUrl"`
}
