package models

// Ids of the social links whose url is derived from the general phone number.
const (
	SocialChatID      = "whatsapp"
	SocialCallID      = "phone"
	SocialVoiceChatID = "viber"
)

type SocialMediaStyle string

const (
	SocialMediaStyleIcons SocialMediaStyle = "icons"
	SocialMediaStyleCards SocialMediaStyle = "cards"
)

// SiteConfiguration is the composite document persisted under a single key.
type SiteConfiguration struct {
	General     GeneralSettings  `json:"general"`
	Sections    []LinkEntry      `json:"sections"`
	SocialMedia []LinkEntry      `json:"socialMedia"`
	Courses     []CourseView     `json:"courses"`
	Gallery     []GalleryView    `json:"gallery"`
	Instructors []InstructorView `json:"instructors"`
	Location    Location         `json:"location"`
	Pages       PageSettings     `json:"pages"`
}

type GeneralSettings struct {
	SiteName      string `json:"siteName" validate:"required"`
	SiteNameEn    string `json:"siteNameEn"`
	Description   string `json:"description"`
	DescriptionEn string `json:"descriptionEn"`
	Logo          string `json:"logo"`
	ShowLogo      bool   `json:"showLogo"`
	PhoneNumber   string `json:"phoneNumber"`
}

// LinkEntry is both a navigation section and a social link.
type LinkEntry struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name"`
	NameEn    string `json:"nameEn"`
	Icon      string `json:"icon"`
	URL       string `json:"url"`
	IconColor string `json:"iconColor"`
	IconBg    string `json:"iconBg"`
	Visible   bool   `json:"visible"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	Visible        bool        `json:"visible"`
	Name           string      `json:"name"`
	NameEn         string      `json:"nameEn"`
	Address        string      `json:"address"`
	AddressEn      string      `json:"addressEn"`
	Phone          string      `json:"phone"`
	WorkingHours   string      `json:"workingHours"`
	WorkingHoursEn string      `json:"workingHoursEn"`
	Coordinates    Coordinates `json:"coordinates"`
	MapsURL        string      `json:"mapsUrl"`
}

type PageSettings struct {
	ShowInstructors  bool             `json:"showInstructors"`
	ShowGallery      bool             `json:"showGallery"`
	ShowSocialMedia  bool             `json:"showSocialMedia"`
	SocialMediaStyle SocialMediaStyle `json:"socialMediaStyle" validate:"omitempty,oneof=icons cards"`
	ShowLocation     bool             `json:"showLocation"`
	ShowFooter       bool             `json:"showFooter"`
}

// Clone returns a deep copy, so callers can hand the document out without sharing slices.
func (c SiteConfiguration) Clone() SiteConfiguration {
	out := c
	out.Sections = cloneSlice(c.Sections)
	out.SocialMedia = cloneSlice(c.SocialMedia)

	out.Courses = make([]CourseView, len(c.Courses))
	for i, v := range c.Courses {
		v.Features = cloneSlice(v.Features)
		v.FeaturesEn = cloneSlice(v.FeaturesEn)
		out.Courses[i] = v
	}

	out.Gallery = cloneSlice(c.Gallery)

	out.Instructors = make([]InstructorView, len(c.Instructors))
	for i, v := range c.Instructors {
		v.Specialties = cloneSlice(v.Specialties)
		v.SpecialtiesEn = cloneSlice(v.SpecialtiesEn)
		out.Instructors[i] = v
	}

	return out
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// SiteView is the merged view model served to the presentation layer.
type SiteView struct {
	SiteConfiguration
	Techniques []TechniqueView `json:"techniques"`
	Loading    bool            `json:"loading"`
}

// DataStatus reports on the persisted configuration document.
type DataStatus struct {
	HasLocalData bool   `json:"hasLocalData"`
	Driver       string `json:"driver"`
}
