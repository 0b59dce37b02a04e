package viewmodel

import "strings"

// Icon is one of the closed set of icons the site can render.
type Icon string

const (
	IconMessageCircle Icon = "message-circle"
	IconBookOpen      Icon = "book-open"
	IconUsers         Icon = "users"
	IconImage         Icon = "image"
	IconAward         Icon = "award"
	IconCalendar      Icon = "calendar"
	IconPenTool       Icon = "pen-tool"
	IconStar          Icon = "star"
	IconHeart         Icon = "heart"
	IconMusic         Icon = "music"
	IconCamera        Icon = "camera"
	IconPalette       Icon = "palette"
	IconBrush         Icon = "brush"
	IconFacebook      Icon = "facebook"
	IconInstagram     Icon = "instagram"
	IconTwitter       Icon = "twitter"
	IconTwitterX      Icon = "twitter-x"
	IconYouTube       Icon = "youtube"
	IconLinkedIn      Icon = "linkedin"
	IconWhatsApp      Icon = "whatsapp"
	IconSnapchat      Icon = "snapchat"
	IconTikTok        Icon = "tiktok"
	IconTelegram      Icon = "telegram"
	IconDiscord       Icon = "discord"
	IconPinterest     Icon = "pinterest"
	IconReddit        Icon = "reddit"
	IconThreads       Icon = "threads"
	IconPhone         Icon = "phone"
	IconMail          Icon = "mail"
	IconGlobe         Icon = "globe"
	IconSend          Icon = "send"
	IconVideo         Icon = "video"
	IconMapPin        Icon = "map-pin"
	IconClock         Icon = "clock"
	IconMessageSquare Icon = "message-square"
	IconAtSign        Icon = "at-sign"
)

// FallbackIcon is rendered for names outside the known set.
const FallbackIcon = IconMessageCircle

var icons = func() map[string]Icon {
	all := []Icon{
		IconMessageCircle, IconBookOpen, IconUsers, IconImage, IconAward, IconCalendar,
		IconPenTool, IconStar, IconHeart, IconMusic, IconCamera, IconPalette, IconBrush,
		IconFacebook, IconInstagram, IconTwitter, IconTwitterX, IconYouTube, IconLinkedIn,
		IconWhatsApp, IconSnapchat, IconTikTok, IconTelegram, IconDiscord, IconPinterest,
		IconReddit, IconThreads, IconPhone, IconMail, IconGlobe, IconSend, IconVideo,
		IconMapPin, IconClock, IconMessageSquare, IconAtSign,
	}

	m := make(map[string]Icon, len(all))
	for _, i := range all {
		m[iconKey(string(i))] = i
	}
	return m
}()

// iconKey folds "BookOpen", "book-open" and "book_open" to the same key.
func iconKey(name string) string {
	r := strings.NewReplacer("-", "", "_", "", " ", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(name)))
}

// ResolveIcon maps a stored icon name to a known icon. It never fails.
func ResolveIcon(name string) Icon {
	if i, ok := icons[iconKey(name)]; ok {
		return i
	}
	return FallbackIcon
}
