package models

// View models are the presentation shapes produced by the viewmodel package.
// Their JSON form is also the form of the static arrays in SiteConfiguration.

type GalleryView struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	TitleEn       string `json:"titleEn"`
	Description   string `json:"description"`
	DescriptionEn string `json:"descriptionEn"`
	Image         string `json:"image"`
	Category      string `json:"category"`
	CategoryEn    string `json:"categoryEn"`
	StudentName   string `json:"studentName"`
	StudentNameEn string `json:"studentNameEn"`
	Instructor    string `json:"instructor"`
	InstructorEn  string `json:"instructorEn"`
	Date          string `json:"date"`
	Featured      bool   `json:"featured"`
	Visible       bool   `json:"visible"`
	Level         string `json:"level"`
	LevelEn       string `json:"levelEn"`
}

type CourseView struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	TitleEn       string   `json:"titleEn"`
	Description   string   `json:"description"`
	DescriptionEn string   `json:"descriptionEn"`
	Duration      string   `json:"duration"`
	DurationEn    string   `json:"durationEn"`
	Level         string   `json:"level"`
	LevelEn       string   `json:"levelEn"`
	Price         float64  `json:"price"`
	Currency      string   `json:"currency"`
	ShowPrice     bool     `json:"showPrice"`
	Image         string   `json:"image"`
	Features      []string `json:"features"`
	FeaturesEn    []string `json:"featuresEn"`
	Instructor    string   `json:"instructor"`
	InstructorEn  string   `json:"instructorEn"`
	Category      string   `json:"category"`
	CategoryEn    string   `json:"categoryEn"`
	EnrollmentURL string   `json:"enrollmentUrl"`
	EnrollViaChat bool     `json:"enrollViaChat"`
	EnrollLink    string   `json:"enrollLink,omitempty"`
	Visible       bool     `json:"visible"`
	Featured      bool     `json:"featured"`
}

type InstructorView struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	NameEn        string   `json:"nameEn"`
	Title         string   `json:"title"`
	TitleEn       string   `json:"titleEn"`
	Image         string   `json:"image"`
	ProfileURL    string   `json:"profileUrl"`
	Experience    string   `json:"experience"`
	ExperienceEn  string   `json:"experienceEn"`
	Specialties   []string `json:"specialties"`
	SpecialtiesEn []string `json:"specialtiesEn"`
	Rating        float64  `json:"rating"`
	StudentsCount int      `json:"studentsCount"`
	Description   string   `json:"description"`
	DescriptionEn string   `json:"descriptionEn"`
	Visible       bool     `json:"visible"`
}

type TechniqueView struct {
	ID                int64    `json:"id"`
	Title             string   `json:"title"`
	TitleEn           string   `json:"titleEn"`
	Description       string   `json:"description"`
	DescriptionEn     string   `json:"descriptionEn"`
	Content           string   `json:"content"`
	ContentEn         string   `json:"contentEn"`
	DifficultyLevel   string   `json:"difficultyLevel"`
	DifficultyLevelEn string   `json:"difficultyLevelEn"`
	Category          string   `json:"category"`
	CategoryEn        string   `json:"categoryEn"`
	ToolsNeeded       []string `json:"toolsNeeded"`
	ToolsNeededEn     []string `json:"toolsNeededEn"`
	Steps             []string `json:"steps"`
	StepsEn           []string `json:"stepsEn"`
	Tips              []string `json:"tips"`
	TipsEn            []string `json:"tipsEn"`
	Image             string   `json:"image"`
	VideoURL          string   `json:"videoUrl"`
	EstimatedTime     string   `json:"estimatedTime"`
	EstimatedTimeEn   string   `json:"estimatedTimeEn"`
	Prerequisites     []string `json:"prerequisites"`
	PrerequisitesEn   []string `json:"prerequisitesEn"`
	RelatedTechniques []int64  `json:"relatedTechniques"`
	Featured          bool     `json:"featured"`
	Visible           bool     `json:"visible"`
	ViewCount         int      `json:"viewCount"`
}
