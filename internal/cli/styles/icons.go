package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "\uf0ac" // web
	IconSearch    = "\uf002" // magnifier
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right
	IconWifi      = "\uf1eb" // wifi
	IconCheck     = "\uf00c" // check
	IconX         = "\uf00d" // x
	IconWarning   = "\uf071" // warning
	IconConfig    = "\uf013" // gear
)
